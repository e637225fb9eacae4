package ports

import (
	"context"

	"github.com/bnema/symcheck/internal/domain"
)

// Gateway is the remote assessment service. Implementations return errors
// wrapping domain.ErrGatewayUnreachable, domain.ErrGatewayError or
// domain.ErrValidationRejected.
type Gateway interface {
	StartSession(ctx context.Context, profile domain.PatientProfile) (domain.Session, error)
	SendMessage(ctx context.Context, msg domain.SymptomMessage) (domain.MessageResult, error)
	SaveAssessment(ctx context.Context, sessionID string, assessment domain.Assessment) error
	Health(ctx context.Context) (domain.HealthStatus, error)
	History(ctx context.Context, sessionID string) (domain.ConversationHistory, error)
	Export(ctx context.Context, sessionID string, format domain.ExportFormat) ([]byte, error)
}
