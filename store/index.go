package store

import (
	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tetsuzan/procgo/model"
)

// IndexField names a secondary index over the record set.
type IndexField uint8

const (
	IndexAuthority IndexField = iota
	IndexStatus
	IndexProcedureType
	IndexActor
	IndexRecipient
	IndexOfficeCategory
	IndexCrossMinistry
	IndexPersonalEvent
	IndexCorporateEvent
	IndexProfession
	IndexFilingSystem

	numIndexes
)

// indexSet holds one posting-list family per indexed field:
// value -> bitmap of record ordinals.
type indexSet struct {
	families [numIndexes]map[string]*roaring.Bitmap
}

// extractors yields the index keys of a record, one entry per family.
// Scalar fields contribute at most one key, multi-valued fields one key
// per element.
var extractors = [numIndexes]func(r *model.Record) []string{
	IndexAuthority:      func(r *model.Record) []string { return scalarKey(r.Authority) },
	IndexStatus:         func(r *model.Record) []string { return scalarKey(r.OnlineStatus) },
	IndexProcedureType:  func(r *model.Record) []string { return scalarKey(r.ProcedureType) },
	IndexActor:          func(r *model.Record) []string { return scalarKey(r.Actor) },
	IndexRecipient:      func(r *model.Record) []string { return scalarKey(r.Recipient) },
	IndexOfficeCategory: func(r *model.Record) []string { return scalarKey(r.OfficeCategory) },
	IndexCrossMinistry:  func(r *model.Record) []string { return scalarKey(r.CrossMinistry) },
	IndexPersonalEvent:  func(r *model.Record) []string { return r.PersonalEvents },
	IndexCorporateEvent: func(r *model.Record) []string { return r.CorporateEvents },
	IndexProfession:     func(r *model.Record) []string { return r.Professions },
	IndexFilingSystem:   func(r *model.Record) []string { return r.FilingSystems },
}

func scalarKey(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// buildIndexes builds all posting-list families. Families are independent,
// so each one is built in its own goroutine over the shared read-only
// record slice.
func buildIndexes(records []model.Record) (*indexSet, error) {
	idx := &indexSet{}
	var g errgroup.Group

	for f := IndexField(0); f < numIndexes; f++ {
		g.Go(func() error {
			family := make(map[string]*roaring.Bitmap)
			extract := extractors[f]
			for ord := range records {
				for _, key := range extract(&records[ord]) {
					bm, ok := family[key]
					if !ok {
						bm = roaring.New()
						family[key] = bm
					}
					bm.Add(uint32(ord))
				}
			}
			idx.families[f] = family
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Postings returns the posting list for a field value, or nil when the
// value never occurs. The returned bitmap is shared and must be treated as
// read-only; combine with roaring.And / roaring.FastOr, not in place.
func (s *Store) Postings(field IndexField, value string) *roaring.Bitmap {
	if field >= numIndexes {
		return nil
	}
	return s.idx.families[field][value]
}

// IndexValues returns the distinct indexed values of a field, unordered.
// Dashboards use this to populate filter choices.
func (s *Store) IndexValues(field IndexField) []string {
	if field >= numIndexes {
		return nil
	}
	family := s.idx.families[field]
	values := make([]string, 0, len(family))
	for v := range family {
		values = append(values, v)
	}
	return values
}
