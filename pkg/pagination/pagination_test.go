package pagination

import "testing"

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name        string
		in          PaginationParams
		wantPage    int
		wantPerPage int
	}{
		{"zero values get defaults", PaginationParams{}, 1, 15},
		{"negative page clamps to 1", PaginationParams{Page: -3, PerPage: 10}, 1, 10},
		{"oversized per_page clamps to 100", PaginationParams{Page: 2, PerPage: 500}, 2, 100},
		{"valid values pass through", PaginationParams{Page: 3, PerPage: 25}, 3, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Validate()
			if tc.in.Page != tc.wantPage || tc.in.PerPage != tc.wantPerPage {
				t.Errorf("got page=%d per_page=%d, want page=%d per_page=%d",
					tc.in.Page, tc.in.PerPage, tc.wantPage, tc.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := PaginationParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset = %d, want 40", got)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)
	if p.TotalPages != 4 {
		t.Errorf("TotalPages = %d, want 4", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("expected middle page to have next and prev, got %+v", p)
	}

	last := NewPagination(4, 10, 35)
	if last.HasNext {
		t.Error("last page must not have next")
	}
}
