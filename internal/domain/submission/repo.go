package submission

import (
	"context"
	"errors"
)

// ErrStorageUnavailable wraps store I/O failures. It is recoverable per
// operation and explicitly distinct from an empty result set.
var ErrStorageUnavailable = errors.New("submission store unavailable")

type Repository interface {
	// Insert appends a row, filling the store-assigned id and timestamp on
	// the passed record. Ids are sequence-backed and never reused after
	// deletion.
	Insert(ctx context.Context, s *Submission) error
	// SearchByName returns all records whose name contains substring,
	// case-insensitively, in the underlying listing order.
	SearchByName(ctx context.Context, substring string) ([]*Submission, error)
	// ListAll returns every record ordered by submission_time descending.
	ListAll(ctx context.Context) ([]*Submission, error)
	// DeleteBatch removes the records whose stored id is in ids and returns
	// the number actually removed. Unknown ids are a no-op, not an error.
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
}
