// Package pkguid generates identifiers.
//
// Summaries are keyed by UUIDv7 strings (StringID); failure events carry
// Snowflake numbers (NumberID) so they sort by creation time.
package pkguid
