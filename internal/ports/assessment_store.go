package ports

import (
	"context"

	"github.com/bnema/symcheck/internal/domain"
)

// AssessmentStore is the client-local durable collection of saved
// assessments. Append must leave the collection unchanged when it fails.
type AssessmentStore interface {
	List(ctx context.Context) ([]domain.SavedAssessmentRecord, error)
	Append(ctx context.Context, record domain.SavedAssessmentRecord) error
}
