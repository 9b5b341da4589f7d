package catalog

import "testing"

func TestSeedIntegrity(t *testing.T) {
	seenSigns := make(map[int]bool)
	for _, s := range Signs() {
		if seenSigns[s.ID] {
			t.Errorf("duplicate sign id %d", s.ID)
		}
		seenSigns[s.ID] = true

		if _, err := GetCategory(s.CategoryID); err != nil {
			t.Errorf("sign %d (%s) references unknown category %d", s.ID, s.Word, s.CategoryID)
		}
		if s.Word == "" {
			t.Errorf("sign %d has empty word", s.ID)
		}
		if s.VideoURL == "" {
			t.Errorf("sign %d has empty video URL", s.ID)
		}
	}

	seenCats := make(map[int]bool)
	for _, cat := range Categories() {
		if seenCats[cat.ID] {
			t.Errorf("duplicate category id %d", cat.ID)
		}
		seenCats[cat.ID] = true
	}
}

func TestByCategoryPreservesOrder(t *testing.T) {
	signs := ByCategory(1)
	if len(signs) == 0 {
		t.Fatal("expected signs in category 1")
	}
	for i := 1; i < len(signs); i++ {
		if signs[i].ID <= signs[i-1].ID {
			t.Errorf("category order broken at index %d: %d after %d", i, signs[i].ID, signs[i-1].ID)
		}
	}

	if got := ByCategory(999); len(got) != 0 {
		t.Errorf("unknown category: got %d signs, want 0", len(got))
	}
}

func TestCategoryCountsMatchSigns(t *testing.T) {
	counts := CategoryCounts()
	total := 0
	for id, n := range counts {
		if got := len(ByCategory(id)); got != n {
			t.Errorf("category %d: count %d, ByCategory returned %d", id, n, got)
		}
		total += n
	}
	if total != TotalSignCount() {
		t.Errorf("counts sum to %d, want %d", total, TotalSignCount())
	}
}

func TestGetSign(t *testing.T) {
	s, err := GetSign(50)
	if err != nil {
		t.Fatalf("get sign 50: %v", err)
	}
	if s.Word != "Hello" {
		t.Errorf("sign 50 word = %q, want %q", s.Word, "Hello")
	}

	if _, err := GetSign(9999); err == nil {
		t.Error("expected error for unknown sign id")
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query   string
		wantID  int
		wantHit bool
	}{
		{"hello", 50, true},
		{"TERE", 50, true}, // keyword, case-insensitive
		{"lumi", 62, true},
		{"", 0, false},
		{"xyzzy", 0, false},
	}

	for _, tt := range tests {
		got := Search(tt.query)
		if !tt.wantHit {
			if len(got) != 0 {
				t.Errorf("Search(%q) = %d results, want none", tt.query, len(got))
			}
			continue
		}
		found := false
		for _, s := range got {
			if s.ID == tt.wantID {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q): sign %d not in results", tt.query, tt.wantID)
		}
	}
}
