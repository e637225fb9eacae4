package domain

import (
	"slices"
	"strings"
	"time"
)

const DefaultEmergencyWarning = "Emergency symptoms detected. Seek immediate medical attention."

type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// Known folds case and whitespace; anything unrecognized is routine.
func (u Urgency) Known() Urgency {
	switch Urgency(strings.ToLower(strings.TrimSpace(string(u)))) {
	case UrgencyEmergency:
		return UrgencyEmergency
	case UrgencyUrgent:
		return UrgencyUrgent
	default:
		return UrgencyRoutine
	}
}

type Condition struct {
	Name            string
	Probability     float64
	Description     string
	UrgencyLevel    string
	Recommendations []string
}

type Assessment struct {
	Urgency             Urgency
	EmergencyWarning    string
	ProbableConditions  []Condition
	ClarifyingQuestions []string
	Reasoning           string
	Recommendations     []string
	AffectedBodySystems []string
	Disclaimer          string
}

// Normalize returns a copy in which an emergency always carries a warning and
// probabilities stay within [0,1].
func (a Assessment) Normalize() Assessment {
	out := a.Clone()
	if out.Urgency.Known() == UrgencyEmergency && strings.TrimSpace(out.EmergencyWarning) == "" {
		out.EmergencyWarning = DefaultEmergencyWarning
	}
	for i := range out.ProbableConditions {
		out.ProbableConditions[i].Probability = clampProbability(out.ProbableConditions[i].Probability)
	}

	return out
}

func (a Assessment) IsEmergency() bool {
	return a.Urgency.Known() == UrgencyEmergency
}

func (a Assessment) Clone() Assessment {
	out := a
	out.ClarifyingQuestions = slices.Clone(a.ClarifyingQuestions)
	out.Recommendations = slices.Clone(a.Recommendations)
	out.AffectedBodySystems = slices.Clone(a.AffectedBodySystems)
	if a.ProbableConditions != nil {
		out.ProbableConditions = make([]Condition, len(a.ProbableConditions))
		for i, c := range a.ProbableConditions {
			c.Recommendations = slices.Clone(c.Recommendations)
			out.ProbableConditions[i] = c
		}
	}

	return out
}

func clampProbability(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// MessageResult is the gateway answer to one symptom message.
type MessageResult struct {
	SessionID        string
	Assessment       Assessment
	ConversationTurn int
	Timestamp        time.Time
}

type HealthStatus struct {
	Status   string
	Services map[string]string
}

func (h HealthStatus) Healthy() bool {
	return strings.EqualFold(h.Status, "healthy") || strings.EqualFold(h.Status, "ok")
}
