package memory

import (
	"context"
	"sync"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
)

// Store keeps saved assessments for the life of the process.
type Store struct {
	mu      sync.RWMutex
	records []domain.SavedAssessmentRecord
}

var _ ports.AssessmentStore = (*Store)(nil)

func NewStore(records ...domain.SavedAssessmentRecord) *Store {
	s := &Store{}
	for _, record := range records {
		s.records = append(s.records, cloneRecord(record))
	}
	return s
}

func (s *Store) List(ctx context.Context) ([]domain.SavedAssessmentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.SavedAssessmentRecord, 0, len(s.records))
	for _, record := range s.records {
		records = append(records, cloneRecord(record))
	}

	return records, nil
}

func (s *Store) Append(ctx context.Context, record domain.SavedAssessmentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, cloneRecord(record))
	return nil
}

func cloneRecord(record domain.SavedAssessmentRecord) domain.SavedAssessmentRecord {
	record.Assessment = record.Assessment.Clone()
	return record
}
