// Package progress maintains the learner's persisted state: the learned
// set, favorites and per-sign notes. Reads fail soft (absent or malformed
// data degrades to empty), writes report success as a boolean. No call here
// panics or returns an error to the UI layer.
package progress

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"

	"github.com/liisbet/viipekeel/internal/catalog"
	"github.com/liisbet/viipekeel/internal/store"
)

// Tracker persists learner progress through a key-value store. One logical
// writer is assumed per key: read-modify-write cycles on the same key must
// not be issued concurrently.
type Tracker struct {
	kv store.KV
}

// NewTracker creates a Tracker backed by kv.
func NewTracker(kv store.KV) *Tracker {
	return &Tracker{kv: kv}
}

// Learned returns the set of learned sign ids. Absent or malformed data
// yields an empty set.
func (t *Tracker) Learned(ctx context.Context) map[int]bool {
	return t.readIDSet(ctx, store.LearnedSignsKey)
}

// MarkLearned unions ids into the learned set and persists the result in a
// single write. Marking an already-learned id is a no-op contribution.
// Returns false if the write (or the preceding read) failed; the previously
// persisted set is never partially overwritten.
func (t *Tracker) MarkLearned(ctx context.Context, ids []int) bool {
	if len(ids) == 0 {
		return false
	}

	current, ok := t.readIDSetStrict(ctx, store.LearnedSignsKey)
	if !ok {
		return false
	}
	for _, id := range ids {
		current[id] = true
	}
	return t.writeIDSet(ctx, store.LearnedSignsKey, current)
}

// ResetLearned deletes the learned set entirely.
func (t *Tracker) ResetLearned(ctx context.Context) bool {
	return t.kv.Delete(ctx, store.LearnedSignsKey) == nil
}

// Favorites returns the set of favorited sign ids.
func (t *Tracker) Favorites(ctx context.Context) map[int]bool {
	return t.readIDSet(ctx, store.FavoriteSignsKey)
}

// ToggleFavorite flips a sign's favorite status and persists the set.
// nowFavorite reports the status after the toggle; ok is false if
// persistence failed, in which case the stored set is unchanged.
func (t *Tracker) ToggleFavorite(ctx context.Context, id int) (nowFavorite, ok bool) {
	current, readOK := t.readIDSetStrict(ctx, store.FavoriteSignsKey)
	if !readOK {
		return false, false
	}
	if current[id] {
		delete(current, id)
	} else {
		current[id] = true
	}
	if !t.writeIDSet(ctx, store.FavoriteSignsKey, current) {
		return false, false
	}
	return current[id], true
}

// ResetFavorites deletes the favorite set entirely.
func (t *Tracker) ResetFavorites(ctx context.Context) bool {
	return t.kv.Delete(ctx, store.FavoriteSignsKey) == nil
}

// Notes returns the per-sign custom notes map.
func (t *Tracker) Notes(ctx context.Context) map[int]string {
	notes := make(map[int]string)
	v, ok, err := t.kv.Get(ctx, store.CustomNotesKey)
	if err != nil || !ok {
		return notes
	}
	// Stored as an object keyed by stringified sign id.
	var raw map[string]string
	if json.Unmarshal([]byte(v), &raw) != nil {
		return notes
	}
	for k, text := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		notes[id] = text
	}
	return notes
}

// SetNote stores a custom note for a sign. Empty text removes the entry.
func (t *Tracker) SetNote(ctx context.Context, id int, text string) bool {
	notes := t.Notes(ctx)
	if text == "" {
		delete(notes, id)
	} else {
		notes[id] = text
	}

	raw := make(map[string]string, len(notes))
	for k, v := range notes {
		raw[strconv.Itoa(k)] = v
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return false
	}
	return t.kv.Set(ctx, store.CustomNotesKey, string(data)) == nil
}

// ResetNotes deletes all custom notes.
func (t *Tracker) ResetNotes(ctx context.Context) bool {
	return t.kv.Delete(ctx, store.CustomNotesKey) == nil
}

// readIDSet loads a JSON id array, degrading to empty on any failure.
func (t *Tracker) readIDSet(ctx context.Context, key string) map[int]bool {
	set, _ := t.readIDSetStrict(ctx, key)
	return set
}

// readIDSetStrict distinguishes I/O failure (ok=false) from absence or
// malformed content, which both read as an empty set. Writers use the strict
// form so a failed read never causes previously learned ids to be dropped.
// Ids no longer present in the catalogue are skipped: a database written by
// an older catalogue must not inflate progress counts.
func (t *Tracker) readIDSetStrict(ctx context.Context, key string) (map[int]bool, bool) {
	set := make(map[int]bool)
	v, present, err := t.kv.Get(ctx, key)
	if err != nil {
		return set, false
	}
	if !present {
		return set, true
	}
	var ids []int
	if json.Unmarshal([]byte(v), &ids) != nil {
		return set, true
	}
	for _, id := range ids {
		if _, err := catalog.GetSign(id); err != nil {
			continue
		}
		set[id] = true
	}
	return set, true
}

func (t *Tracker) writeIDSet(ctx context.Context, key string, set map[int]bool) bool {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return false
	}
	return t.kv.Set(ctx, key, string(data)) == nil
}
