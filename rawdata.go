package profgen

import "context"

// RawStore persists the unredacted profile record with atomic semantics.
// Save writes to a temporary location; Commit makes it permanent; Abort
// discards pending writes. A run that does not request raw retention never
// calls Save, and an aborted run must leave no committed raw file behind.
type RawStore interface {
	Save(ctx context.Context, rec *ProfileRecord) error
	Commit() error
	Abort() error

	// Delete removes the committed raw data file. Missing files are not an
	// error: cleanup must be idempotent.
	Delete() error

	// Load reads back a previously committed raw record, verifying its
	// integrity hash. Returns ENOTFOUND when no raw file exists.
	Load(ctx context.Context) (*ProfileRecord, error)
}
