package progress

import (
	"math"

	"github.com/liisbet/viipekeel/internal/catalog"
)

// Stats summarizes a learner's progress within one category.
type Stats struct {
	Learned    int
	Remaining  int
	Percentage int
}

// CategoryStats computes progress over the given category signs. Pure
// function; percentage is 0 for an empty category.
func CategoryStats(signs []catalog.Sign, learned map[int]bool) Stats {
	var count int
	for _, s := range signs {
		if learned[s.ID] {
			count++
		}
	}

	st := Stats{
		Learned:   count,
		Remaining: len(signs) - count,
	}
	if len(signs) > 0 {
		st.Percentage = int(math.Round(float64(count) / float64(len(signs)) * 100))
	}
	return st
}

// NextBatch returns up to count unlearned signs, preserving catalogue order.
// An empty result signals the category is complete.
func NextBatch(signs []catalog.Sign, learned map[int]bool, count int) []catalog.Sign {
	if count <= 0 {
		return nil
	}
	var batch []catalog.Sign
	for _, s := range signs {
		if learned[s.ID] {
			continue
		}
		batch = append(batch, s)
		if len(batch) == count {
			break
		}
	}
	return batch
}

// CategoryComplete reports whether every sign in the slice is learned.
// Empty categories are never complete — there is nothing to have learned,
// and mini-games stay locked for them.
func CategoryComplete(signs []catalog.Sign, learned map[int]bool) bool {
	if len(signs) == 0 {
		return false
	}
	for _, s := range signs {
		if !learned[s.ID] {
			return false
		}
	}
	return true
}

// CompletionByCategory evaluates the mini-game unlock predicate for every
// catalogue category.
func CompletionByCategory(learned map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for _, cat := range catalog.Categories() {
		out[cat.ID] = CategoryComplete(catalog.ByCategory(cat.ID), learned)
	}
	return out
}
