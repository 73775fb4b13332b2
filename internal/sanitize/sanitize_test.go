package sanitize

import (
	"strings"
	"testing"
)

func TestHTML_PlainTextUnchanged(t *testing.T) {
	in := "just some plain text, nothing fancy"
	if got := HTML(in); got != in {
		t.Fatalf("HTML(%q) = %q", in, got)
	}
}

func TestHTML_Empty(t *testing.T) {
	if got := HTML(""); got != "" {
		t.Fatalf("HTML(\"\") = %q", got)
	}
}

func TestHTML_StripsScript(t *testing.T) {
	got := HTML(`hello<script>alert("x")</script> world`)
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Fatalf("script survived: %q", got)
	}
	if !strings.Contains(got, "hello") || !strings.Contains(got, "world") {
		t.Fatalf("text lost: %q", got)
	}
}

func TestHTML_KeepsAllowedInlineTags(t *testing.T) {
	got := HTML("<b>bold</b> and <em>em</em> and <strong>s</strong> and <i>i</i>")
	for _, tag := range []string{"<b>", "<em>", "<strong>", "<i>"} {
		if !strings.Contains(got, tag) {
			t.Errorf("tag %s stripped: %q", tag, got)
		}
	}
}

func TestHTML_KeepsHrefDropsOtherAttrs(t *testing.T) {
	got := HTML(`<a href="https://example.com" onclick="evil()">link</a>`)
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Fatalf("href lost: %q", got)
	}
	if strings.Contains(got, "onclick") {
		t.Fatalf("onclick survived: %q", got)
	}
}

func TestHTML_StripsDisallowedTags(t *testing.T) {
	got := HTML(`<img src="x.png"><div>content</div>`)
	if strings.Contains(got, "<img") || strings.Contains(got, "<div") {
		t.Fatalf("disallowed tag survived: %q", got)
	}
	if !strings.Contains(got, "content") {
		t.Fatalf("text lost: %q", got)
	}
}
