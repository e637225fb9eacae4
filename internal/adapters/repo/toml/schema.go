package toml

import (
	"fmt"

	"github.com/bnema/symcheck/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version          int            `toml:"version"`
	SavedAssessments []recordSchema `toml:"saved_assessments"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("%w: %d (current %d)", domain.ErrUnsupportedSchema, s.Version, currentSchemaVersion)
	}

	return nil
}

type recordSchema struct {
	ID          string            `toml:"id"`
	SessionID   string            `toml:"session_id"`
	Timestamp   string            `toml:"timestamp"`
	PatientInfo patientInfoSchema `toml:"patient_info"`
	Assessment  assessmentSchema  `toml:"assessment"`
}

type patientInfoSchema struct {
	Age int    `toml:"age"`
	Sex string `toml:"sex"`
}

type assessmentSchema struct {
	Urgency             string            `toml:"urgency"`
	EmergencyWarning    string            `toml:"emergency_warning,omitempty"`
	Reasoning           string            `toml:"reasoning"`
	Disclaimer          string            `toml:"disclaimer,omitempty"`
	Recommendations     []string          `toml:"recommendations,omitempty"`
	ClarifyingQuestions []string          `toml:"clarifying_questions,omitempty"`
	BodySystemsAffected []string          `toml:"body_systems_affected,omitempty"`
	ProbableConditions  []conditionSchema `toml:"probable_conditions,omitempty"`
}

type conditionSchema struct {
	Name            string   `toml:"name"`
	Probability     float64  `toml:"probability"`
	Description     string   `toml:"description,omitempty"`
	UrgencyLevel    string   `toml:"urgency_level,omitempty"`
	Recommendations []string `toml:"recommendations,omitempty"`
}
