package procgo

import (
	"context"

	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/query"
	"github.com/tetsuzan/procgo/stats"
	"github.com/tetsuzan/procgo/stream"
)

// Query creates a new fluent query builder.
//
// Example:
//
//	results := db.Query().
//	    Authorities("法務省").
//	    Statuses("未実施").
//	    Keyword("登記").
//	    Offset(200).Limit(100).
//	    Execute()
func (db *DB) Query() *QueryBuilder {
	return &QueryBuilder{db: db}
}

// QueryBuilder is a fluent builder for constructing queries.
type QueryBuilder struct {
	db *DB
	q  query.Query
}

// Keyword matches records whose procedure name or governing-law name
// contains the keyword, case-insensitively.
func (qb *QueryBuilder) Keyword(kw string) *QueryBuilder {
	qb.q.Keyword = kw
	return qb
}

// Authorities filters by issuing authority.
func (qb *QueryBuilder) Authorities(values ...string) *QueryBuilder {
	qb.q.Authorities = append(qb.q.Authorities, values...)
	return qb
}

// Statuses filters by online-implementation status.
func (qb *QueryBuilder) Statuses(values ...string) *QueryBuilder {
	qb.q.Statuses = append(qb.q.Statuses, values...)
	return qb
}

// Types filters by procedure type.
func (qb *QueryBuilder) Types(values ...string) *QueryBuilder {
	qb.q.Types = append(qb.q.Types, values...)
	return qb
}

// Actors filters by the party performing the procedure.
func (qb *QueryBuilder) Actors(values ...string) *QueryBuilder {
	qb.q.Actors = append(qb.q.Actors, values...)
	return qb
}

// Recipients filters by the party receiving the procedure.
func (qb *QueryBuilder) Recipients(values ...string) *QueryBuilder {
	qb.q.Recipients = append(qb.q.Recipients, values...)
	return qb
}

// OfficeCategories filters by municipal office category.
func (qb *QueryBuilder) OfficeCategories(values ...string) *QueryBuilder {
	qb.q.OfficeCategories = append(qb.q.OfficeCategories, values...)
	return qb
}

// CrossMinistry filters by the cross-ministry procedure flag.
func (qb *QueryBuilder) CrossMinistry(values ...string) *QueryBuilder {
	qb.q.CrossMinistry = append(qb.q.CrossMinistry, values...)
	return qb
}

// PersonalEvents filters by personal life-event tags.
func (qb *QueryBuilder) PersonalEvents(values ...string) *QueryBuilder {
	qb.q.PersonalEvents = append(qb.q.PersonalEvents, values...)
	return qb
}

// CorporateEvents filters by corporate life-event tags.
func (qb *QueryBuilder) CorporateEvents(values ...string) *QueryBuilder {
	qb.q.CorporateEvents = append(qb.q.CorporateEvents, values...)
	return qb
}

// Professions filters by licensed-profession tags.
func (qb *QueryBuilder) Professions(values ...string) *QueryBuilder {
	qb.q.Professions = append(qb.q.Professions, values...)
	return qb
}

// FilingSystems filters by filing information-system name.
func (qb *QueryBuilder) FilingSystems(values ...string) *QueryBuilder {
	qb.q.FilingSystems = append(qb.q.FilingSystems, values...)
	return qb
}

// VolumeBands filters by total-volume bands; bands are ORed.
func (qb *QueryBuilder) VolumeBands(bands ...query.Band) *QueryBuilder {
	qb.q.VolumeBands = append(qb.q.VolumeBands, bands...)
	return qb
}

// Offset skips the first n matches.
func (qb *QueryBuilder) Offset(n int) *QueryBuilder {
	qb.q.Offset = n
	return qb
}

// Limit bounds the number of returned matches.
func (qb *QueryBuilder) Limit(n int) *QueryBuilder {
	qb.q.Limit = n
	return qb
}

// Build returns the assembled query value.
func (qb *QueryBuilder) Build() query.Query {
	return qb.q
}

// Execute runs the query and returns the matching records.
func (qb *QueryBuilder) Execute() []model.Record {
	return qb.db.Search(qb.q)
}

// Count returns the number of matches, ignoring pagination.
func (qb *QueryBuilder) Count() int {
	return qb.db.Count(qb.q)
}

// Summarize computes summary statistics over the matches.
func (qb *QueryBuilder) Summarize() stats.Snapshot {
	return qb.db.Summarize(qb.q)
}

// Chunks returns a delivery cursor over the matches. A size of 0 means
// the DB default.
func (qb *QueryBuilder) Chunks(size int) (*stream.Cursor, error) {
	return qb.db.Chunks(qb.q, size)
}

// Deliver streams the matches into w as newline-delimited JSON chunks.
func (qb *QueryBuilder) Deliver(ctx context.Context, size int, w *stream.Writer) error {
	return qb.db.Deliver(ctx, qb.q, size, w)
}
