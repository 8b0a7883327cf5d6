package mock

import (
	"context"

	"github.com/aleksw/profgen"
)

var _ profgen.RawStore = (*RawStore)(nil)

// RawStore is a mock implementation of profgen.RawStore.
type RawStore struct {
	SaveFn   func(ctx context.Context, rec *profgen.ProfileRecord) error
	CommitFn func() error
	AbortFn  func() error
	DeleteFn func() error
	LoadFn   func(ctx context.Context) (*profgen.ProfileRecord, error)
}

func (s *RawStore) Save(ctx context.Context, rec *profgen.ProfileRecord) error {
	return s.SaveFn(ctx, rec)
}

func (s *RawStore) Commit() error {
	return s.CommitFn()
}

func (s *RawStore) Abort() error {
	return s.AbortFn()
}

func (s *RawStore) Delete() error {
	return s.DeleteFn()
}

func (s *RawStore) Load(ctx context.Context) (*profgen.ProfileRecord, error) {
	return s.LoadFn(ctx)
}
