package query

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/store"
)

// Engine evaluates queries against a store. It holds no mutable state, so
// one Engine serves any number of concurrent callers.
type Engine struct {
	store *store.Store
}

// New creates an Engine over the given store.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

type indexedPredicate struct {
	field  store.IndexField
	values []string
}

// indexedPredicates pairs each categorical predicate with its index family.
func indexedPredicates(q *Query) []indexedPredicate {
	return []indexedPredicate{
		{store.IndexAuthority, q.Authorities},
		{store.IndexStatus, q.Statuses},
		{store.IndexProcedureType, q.Types},
		{store.IndexActor, q.Actors},
		{store.IndexRecipient, q.Recipients},
		{store.IndexOfficeCategory, q.OfficeCategories},
		{store.IndexCrossMinistry, q.CrossMinistry},
		{store.IndexPersonalEvent, q.PersonalEvents},
		{store.IndexCorporateEvent, q.CorporateEvents},
		{store.IndexProfession, q.Professions},
		{store.IndexFilingSystem, q.FilingSystems},
	}
}

// Search returns the records matching q in source order, after applying
// offset/limit. Identical queries against the same store always return
// identical results.
func (e *Engine) Search(q Query) []model.Record {
	var out []model.Record
	e.scan(q, func(rec model.Record) {
		out = append(out, rec)
	})
	return out
}

// Count returns the number of matches ignoring pagination.
func (e *Engine) Count(q Query) int {
	q.Offset, q.Limit = 0, 0
	n := 0
	e.scan(q, func(model.Record) { n++ })
	return n
}

// Ordinals returns the matching record ordinals ignoring pagination.
// Aggregation uses this to tally a filtered subset without copying records.
func (e *Engine) Ordinals(q Query) []model.Ordinal {
	q.Offset, q.Limit = 0, 0
	var out []model.Ordinal
	e.scanOrds(q, func(ord model.Ordinal, _ model.Record) {
		out = append(out, ord)
	})
	return out
}

func (e *Engine) scan(q Query, emit func(model.Record)) {
	e.scanOrds(q, func(_ model.Ordinal, rec model.Record) { emit(rec) })
}

// scanOrds walks matches in ascending ordinal order, honoring pagination.
func (e *Engine) scanOrds(q Query, emit func(model.Ordinal, model.Record)) {
	cand, empty := e.candidates(&q)
	if empty {
		return
	}

	keyword := strings.ToLower(strings.TrimSpace(q.Keyword))
	skip := q.Offset
	remaining := q.Limit
	unbounded := q.Limit <= 0

	visit := func(ord model.Ordinal) bool {
		rec := e.store.At(ord)
		if !matchScan(&rec, keyword, q.VolumeBands) {
			return true
		}
		if skip > 0 {
			skip--
			return true
		}
		emit(ord, rec)
		if !unbounded {
			remaining--
			if remaining == 0 {
				return false
			}
		}
		return true
	}

	if cand != nil {
		it := cand.Iterator()
		for it.HasNext() {
			if !visit(model.Ordinal(it.Next())) {
				return
			}
		}
		return
	}
	for ord := 0; ord < e.store.Len(); ord++ {
		if !visit(model.Ordinal(ord)) {
			return
		}
	}
}

// candidates intersects the posting lists of all indexed predicates.
// cand == nil means "no indexed predicate, scan everything"; empty == true
// means some predicate can never match. Unknown categorical values fall
// out of this naturally: no posting list, empty union, zero matches.
func (e *Engine) candidates(q *Query) (cand *roaring.Bitmap, empty bool) {
	for _, p := range indexedPredicates(q) {
		if len(p.values) == 0 {
			continue
		}
		union := e.union(p.field, p.values)
		if union.IsEmpty() {
			return nil, true
		}
		if cand == nil {
			cand = union
			continue
		}
		cand.And(union)
		if cand.IsEmpty() {
			return nil, true
		}
	}
	return cand, false
}

// union ORs the posting lists of the requested values. Values with no
// postings contribute nothing.
func (e *Engine) union(field store.IndexField, values []string) *roaring.Bitmap {
	lists := make([]*roaring.Bitmap, 0, len(values))
	for _, v := range values {
		if bm := e.store.Postings(field, v); bm != nil {
			lists = append(lists, bm)
		}
	}
	switch len(lists) {
	case 0:
		return roaring.New()
	case 1:
		// Clone so the caller may intersect in place without touching
		// the store's posting list.
		return lists[0].Clone()
	default:
		return roaring.FastOr(lists...)
	}
}

// matchScan applies the non-indexed predicates.
func matchScan(rec *model.Record, keyword string, bands []Band) bool {
	if keyword != "" {
		if !strings.Contains(strings.ToLower(rec.Name), keyword) &&
			!strings.Contains(strings.ToLower(rec.LawName), keyword) {
			return false
		}
	}
	if len(bands) > 0 {
		hit := false
		for _, b := range bands {
			if b.matches(rec.TotalVolume) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
