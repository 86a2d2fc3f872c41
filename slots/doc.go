// Package slots provides sharedstore.Slot implementations backed by
// external storage. A slot is always a single record: one Redis key, one
// Bolt entry, one SQL row, one Cassandra row or one Elasticsearch document.
// A missing record reads as an empty string.
package slots
