// Package query answers filtered, paginated lookups against the store.
//
// A Query is an ephemeral value object: a set of predicates ANDed
// together, where an unset predicate matches everything. Indexed
// predicates (authority, status, type, actor, recipient, office category,
// cross-ministry flag, life events, professions, filing systems) resolve
// to bitmap intersections; keyword and volume predicates scan the
// surviving candidates. Results are always in source order no matter
// which predicates fired, so repeating a query paginates identically.
package query
