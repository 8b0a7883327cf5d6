// Package fs implements filesystem-backed storage: the raw-data store, the
// audit state collector, and raw-file cleanup.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aleksw/profgen"
	"github.com/cespare/xxhash/v2"
)

// RawFileName is the committed raw-data file name inside the output
// directory.
const RawFileName = "profile_raw.json"

const rawEnvelopeVersion = 1

// rawEnvelope wraps the unredacted record on disk with an integrity
// checksum over the record bytes.
type rawEnvelope struct {
	Version  int             `json:"version"`
	SavedAt  time.Time       `json:"savedAt"`
	Checksum string          `json:"checksum"`
	Record   json.RawMessage `json:"record"`
}

// RawStore persists the unredacted record under dir with write-temp,
// rename-on-commit semantics. It implements profgen.RawStore.
type RawStore struct {
	dir string
}

// NewRawStore returns a store rooted at dir. The directory is created on
// first Save.
func NewRawStore(dir string) *RawStore {
	return &RawStore{dir: dir}
}

// Path returns the committed raw file path.
func (s *RawStore) Path() string {
	return filepath.Join(s.dir, RawFileName)
}

func (s *RawStore) tempPath() string {
	return s.Path() + ".tmp"
}

// Save writes the record to the temporary location. Nothing is visible at
// the committed path until Commit.
func (s *RawStore) Save(ctx context.Context, rec *profgen.ProfileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "create raw data directory: %v", err)
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "marshal raw record: %v", err)
	}
	env := rawEnvelope{
		Version:  rawEnvelopeVersion,
		SavedAt:  time.Now().UTC(),
		Checksum: checksum(body),
		Record:   body,
	}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "marshal raw envelope: %v", err)
	}

	// Raw data is sensitive, owner-only from the first byte.
	if err := os.WriteFile(s.tempPath(), out, 0o600); err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "write raw data: %v", err)
	}
	return nil
}

// Commit renames the pending write into place.
func (s *RawStore) Commit() error {
	if err := os.Rename(s.tempPath(), s.Path()); err != nil {
		return profgen.Errorf(profgen.EINTERNAL, "commit raw data: %v", err)
	}
	return nil
}

// Abort discards any pending write. Safe to call when nothing is pending.
func (s *RawStore) Abort() error {
	if err := os.Remove(s.tempPath()); err != nil && !os.IsNotExist(err) {
		return profgen.Errorf(profgen.EINTERNAL, "abort raw data: %v", err)
	}
	return nil
}

// Delete removes the committed raw file. Missing files are not an error.
func (s *RawStore) Delete() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return profgen.Errorf(profgen.EINTERNAL, "delete raw data: %v", err)
	}
	return nil
}

// Load reads back the committed record and verifies its checksum.
func (s *RawStore) Load(ctx context.Context) (*profgen.ProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, profgen.Errorf(profgen.ENOTFOUND, "no raw data file at %s", s.Path())
		}
		return nil, profgen.Errorf(profgen.EINTERNAL, "read raw data: %v", err)
	}

	var env rawEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, profgen.Errorf(profgen.EINVALID, "parse raw data envelope: %v", err)
	}
	if sum := checksum(env.Record); sum != env.Checksum {
		return nil, profgen.Errorf(profgen.EINVALID,
			"raw data checksum mismatch (have %s, want %s)", sum, env.Checksum)
	}

	var rec profgen.ProfileRecord
	if err := json.Unmarshal(env.Record, &rec); err != nil {
		return nil, profgen.Errorf(profgen.EINVALID, "parse raw record: %v", err)
	}
	return &rec, nil
}

func checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// RecordHash returns the integrity hash of a record's JSON form, the same
// hash stored in the raw-data envelope and the audit trail.
func RecordHash(rec *profgen.ProfileRecord) (string, error) {
	body, err := json.Marshal(rec)
	if err != nil {
		return "", profgen.Errorf(profgen.EINTERNAL, "marshal record for hashing: %v", err)
	}
	return checksum(body), nil
}
