package query

import (
	"sort"
	"strconv"
	"strings"
)

// Band is a half-open total-volume interval [Min, Max). Max == 0 means
// unbounded above. The zero Band matches only zero-or-unknown volumes.
type Band struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max,omitempty"`
}

// Volume bands of the survey dashboard, largest first.
var (
	BandMillionPlus   = Band{Min: 1_000_000}
	Band100KTo1M      = Band{Min: 100_000, Max: 1_000_000}
	Band10KTo100K     = Band{Min: 10_000, Max: 100_000}
	Band1KTo10K       = Band{Min: 1_000, Max: 10_000}
	Band100To1K       = Band{Min: 100, Max: 1_000}
	Band10To100       = Band{Min: 10, Max: 100}
	Band1To10         = Band{Min: 1, Max: 10}
	BandZeroOrUnknown = Band{}
)

func (b Band) matches(v uint64) bool {
	if b.Min == 0 && b.Max == 0 {
		return v == 0
	}
	if v < b.Min {
		return false
	}
	return b.Max == 0 || v < b.Max
}

// Query describes one search: predicates ANDed across fields, values
// within one field ORed, plus pagination. The zero Query matches every
// record. Queries never mutate the store.
type Query struct {
	// Keyword matches case-insensitively as a substring of the procedure
	// name or the governing-law name (either suffices).
	Keyword string `json:"keyword,omitempty"`

	// Indexed categorical predicates. An unknown value matches zero
	// records rather than failing; source categories evolve.
	Authorities      []string `json:"authorities,omitempty"`
	Statuses         []string `json:"statuses,omitempty"`
	Types            []string `json:"types,omitempty"`
	Actors           []string `json:"actors,omitempty"`
	Recipients       []string `json:"recipients,omitempty"`
	OfficeCategories []string `json:"office_categories,omitempty"`
	CrossMinistry    []string `json:"cross_ministry,omitempty"`
	PersonalEvents   []string `json:"personal_events,omitempty"`
	CorporateEvents  []string `json:"corporate_events,omitempty"`
	Professions      []string `json:"professions,omitempty"`
	FilingSystems    []string `json:"filing_systems,omitempty"`

	// VolumeBands restricts by total procedure volume; bands are ORed.
	VolumeBands []Band `json:"volume_bands,omitempty"`

	// Offset skips leading matches; an offset past the result set yields
	// an empty result, never an error. Limit bounds the returned count;
	// zero or negative means unbounded.
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// IsZero reports whether the query has no predicates and no pagination.
func (q Query) IsZero() bool {
	return q.Keyword == "" &&
		len(q.Authorities) == 0 && len(q.Statuses) == 0 && len(q.Types) == 0 &&
		len(q.Actors) == 0 && len(q.Recipients) == 0 &&
		len(q.OfficeCategories) == 0 && len(q.CrossMinistry) == 0 &&
		len(q.PersonalEvents) == 0 && len(q.CorporateEvents) == 0 &&
		len(q.Professions) == 0 && len(q.FilingSystems) == 0 &&
		len(q.VolumeBands) == 0 &&
		q.Offset == 0 && q.Limit == 0
}

// Key returns a canonical string for the query's predicate set, ignoring
// pagination. Equal predicate sets produce equal keys regardless of value
// order, which makes it usable as a statistics-cache key.
func (q Query) Key() string {
	var sb strings.Builder
	writePart := func(tag string, values []string) {
		if len(values) == 0 {
			return
		}
		sorted := append([]string(nil), values...)
		sort.Strings(sorted)
		sb.WriteString(tag)
		sb.WriteByte('=')
		sb.WriteString(strings.Join(sorted, "\x1f"))
		sb.WriteByte('\x1e')
	}

	if q.Keyword != "" {
		sb.WriteString("kw=")
		sb.WriteString(strings.ToLower(q.Keyword))
		sb.WriteByte('\x1e')
	}
	writePart("auth", q.Authorities)
	writePart("status", q.Statuses)
	writePart("type", q.Types)
	writePart("actor", q.Actors)
	writePart("recip", q.Recipients)
	writePart("office", q.OfficeCategories)
	writePart("common", q.CrossMinistry)
	writePart("pev", q.PersonalEvents)
	writePart("cev", q.CorporateEvents)
	writePart("prof", q.Professions)
	writePart("fsys", q.FilingSystems)

	if len(q.VolumeBands) > 0 {
		bands := append([]Band(nil), q.VolumeBands...)
		sort.Slice(bands, func(i, j int) bool {
			if bands[i].Min != bands[j].Min {
				return bands[i].Min < bands[j].Min
			}
			return bands[i].Max < bands[j].Max
		})
		sb.WriteString("vol=")
		for _, b := range bands {
			sb.WriteString(bandKey(b))
			sb.WriteByte('\x1f')
		}
		sb.WriteByte('\x1e')
	}
	return sb.String()
}

func bandKey(b Band) string {
	return strconv.FormatUint(b.Min, 10) + "-" + strconv.FormatUint(b.Max, 10)
}
