package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitaldash/vitaldash/internal/platform/observability"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save stores a completed assessment record.
func (s *Service) Save(ctx context.Context, sub *Submission) error {
	return s.repo.Insert(ctx, sub)
}

// Search returns the records whose name contains substring (case-insensitive),
// renumbered 1..N in result order. A blank substring is rejected rather than
// treated as match-all.
func (s *Service) Search(ctx context.Context, substring string) ([]*Row, error) {
	substring = strings.TrimSpace(substring)
	if substring == "" {
		return nil, fmt.Errorf("search name must not be empty")
	}
	items, err := s.repo.SearchByName(ctx, substring)
	if err != nil {
		return nil, err
	}
	return renumber(items), nil
}

// List returns every stored record, newest first, renumbered 1..N.
func (s *Service) List(ctx context.Context) ([]*Row, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return renumber(items), nil
}

// Delete removes the records with the given stored ids and returns how many
// were actually deleted. Duplicate and unknown ids are tolerated, so a retry
// of the same batch is safe and simply reports zero.
func (s *Service) Delete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids must not be empty")
	}
	seen := make(map[int64]bool, len(ids))
	unique := ids[:0:0]
	for _, id := range ids {
		if id <= 0 {
			return 0, fmt.Errorf("invalid id: %d", id)
		}
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	n, err := s.repo.DeleteBatch(ctx, unique)
	if err != nil {
		return 0, err
	}
	observability.RecordDeleted(n)
	return n, nil
}

func renumber(items []*Submission) []*Row {
	rows := make([]*Row, len(items))
	for i, it := range items {
		rows[i] = &Row{Submission: *it, DisplayIndex: i + 1}
	}
	return rows
}
