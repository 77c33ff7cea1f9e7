// Package testutil provides deterministic survey fixtures for tests:
// synthetic records and raw CSV renderings in the source file's shape.
package testutil
