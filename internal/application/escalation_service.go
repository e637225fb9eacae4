package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/bnema/symcheck/internal/ports"
	"go.uber.org/zap"
)

const DefaultEmergencyNumber = "911"

var ErrNoDialer = errors.New("no emergency dialer configured")

type EmergencyPanel struct {
	Warning         string
	Recommendations []string
	Number          string
}

type EscalationService struct {
	dialer ports.EmergencyDialer
	number string
	logger *zap.Logger
}

func NewEscalationService(dialer ports.EmergencyDialer, number string, logger *zap.Logger) *EscalationService {
	if strings.TrimSpace(number) == "" {
		number = DefaultEmergencyNumber
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &EscalationService{dialer: dialer, number: strings.TrimSpace(number), logger: logger}
}

func (s *EscalationService) Number() string {
	return s.number
}

func (s *EscalationService) Evaluate(assessment domain.Assessment) domain.Escalation {
	return domain.Classify(assessment.Urgency)
}

// Panel returns the mandatory emergency panel for an emergency assessment.
func (s *EscalationService) Panel(assessment domain.Assessment) (EmergencyPanel, bool) {
	if !s.Evaluate(assessment).EmergencyPanel {
		return EmergencyPanel{}, false
	}

	normalized := assessment.Normalize()
	return EmergencyPanel{
		Warning:         normalized.EmergencyWarning,
		Recommendations: slices.Clone(normalized.Recommendations),
		Number:          s.number,
	}, true
}

func (s *EscalationService) CallEmergency(ctx context.Context) error {
	if s.dialer == nil {
		return ErrNoDialer
	}

	s.logger.Warn("dialing emergency services", zap.String("number", s.number))
	if err := s.dialer.Dial(ctx, s.number); err != nil {
		return fmt.Errorf("dial emergency number %s: %w", s.number, err)
	}

	return nil
}
