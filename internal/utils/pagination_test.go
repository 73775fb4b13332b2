package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	if got := AtoiDefault("", 7); got != 7 {
		t.Fatalf("empty: got %d", got)
	}
	if got := AtoiDefault("abc", 7); got != 7 {
		t.Fatalf("garbage: got %d", got)
	}
	if got := AtoiDefault("42", 7); got != 42 {
		t.Fatalf("number: got %d", got)
	}
}

func TestClampPage(t *testing.T) {
	if got := ClampPage(""); got != 1 {
		t.Fatalf("default: got %d", got)
	}
	if got := ClampPage("0"); got != 1 {
		t.Fatalf("zero: got %d", got)
	}
	if got := ClampPage("-3"); got != 1 {
		t.Fatalf("negative: got %d", got)
	}
	if got := ClampPage("5"); got != 5 {
		t.Fatalf("number: got %d", got)
	}
}

func TestClampLimit(t *testing.T) {
	if got := ClampLimit("", 10, 100); got != 10 {
		t.Fatalf("default: got %d", got)
	}
	if got := ClampLimit("0", 10, 100); got != 1 {
		t.Fatalf("floor: got %d", got)
	}
	if got := ClampLimit("500", 10, 100); got != 100 {
		t.Fatalf("cap: got %d", got)
	}
	if got := ClampLimit("500", 10, 0); got != 500 {
		t.Fatalf("uncapped: got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{99, 10, 10},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(45, 2, 10)
	if p.Total != 45 || p.TotalPages != 5 || p.CurrentPage != 2 || p.Limit != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}
}
