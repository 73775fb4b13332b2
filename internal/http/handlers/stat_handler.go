// Admin statistics HTTP handler.
package handlers

import "github.com/gin-gonic/gin"

// AdminStats godoc
// @ID          adminStats
// @Summary     Site-wide totals
// @Description Row totals for users, posts, likes, and comments. Administrators only.
// @Tags        Admin
// @Produce     json
// @Success     200  {object}  map[string]any
// @Failure     401  {object}  map[string]any
// @Failure     403  {object}  map[string]any  "Not an administrator"
// @Router      /admin/stats [get]
func (h *Handlers) AdminStats(c *gin.Context) {
	totals, err := h.stats.AdminStats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, 200, totals)
}
