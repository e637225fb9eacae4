package rest

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bnema/symcheck/internal/domain"
)

type sessionRequest struct {
	Age            int      `json:"age"`
	Sex            string   `json:"sex"`
	MedicalHistory []string `json:"medical_history"`
	Medications    []string `json:"medications"`
	Allergies      []string `json:"allergies"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type messageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Severity  int    `json:"severity"`
	Duration  string `json:"duration,omitempty"`
}

type messageResponse struct {
	SessionID        string             `json:"session_id"`
	Assessment       *assessmentPayload `json:"assessment"`
	ConversationTurn int                `json:"conversation_turn"`
	Timestamp        string             `json:"timestamp"`
}

type conditionPayload struct {
	Name            string   `json:"name"`
	Probability     float64  `json:"probability"`
	Description     string   `json:"description"`
	UrgencyLevel    string   `json:"urgency_level"`
	Recommendations []string `json:"recommendations"`
}

type assessmentPayload struct {
	Urgency             string             `json:"urgency"`
	EmergencyWarning    string             `json:"emergency_warning,omitempty"`
	ProbableConditions  []conditionPayload `json:"probable_conditions"`
	ClarifyingQuestions []string           `json:"clarifying_questions"`
	Reasoning           string             `json:"reasoning"`
	Recommendations     []string           `json:"recommendations"`
	BodySystemsAffected []string           `json:"body_systems_affected"`
	Disclaimer          string             `json:"disclaimer"`
}

type saveRequest struct {
	SessionID  string            `json:"session_id"`
	Assessment assessmentPayload `json:"assessment"`
}

type exportRequest struct {
	SessionID string `json:"session_id"`
	Format    string `json:"format"`
}

type historyTurnPayload struct {
	UserMessage       string            `json:"user_message"`
	AssistantResponse assessmentPayload `json:"assistant_response"`
	Timestamp         string            `json:"timestamp"`
	SeverityReported  *int              `json:"severity_reported,omitempty"`
}

type historyResponse struct {
	SessionID   string               `json:"session_id"`
	Turns       []historyTurnPayload `json:"turns"`
	TotalTurns  int                  `json:"total_turns"`
	CreatedAt   string               `json:"created_at"`
	LastUpdated string               `json:"last_updated"`
	Summary     string               `json:"summary,omitempty"`
}

type healthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// errorResponse covers both `{"detail": "..."}` and the list form used for
// field validation errors.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
	Error  string          `json:"error"`
}

type validationDetail struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func (e errorResponse) message() string {
	if len(e.Detail) > 0 {
		var text string
		if err := json.Unmarshal(e.Detail, &text); err == nil {
			return text
		}

		var details []validationDetail
		if err := json.Unmarshal(e.Detail, &details); err == nil {
			msgs := make([]string, 0, len(details))
			for _, d := range details {
				if d.Msg != "" {
					msgs = append(msgs, d.Msg)
				}
			}
			return strings.Join(msgs, "; ")
		}
	}

	return e.Error
}

func toSessionRequest(profile domain.PatientProfile) sessionRequest {
	return sessionRequest{
		Age:            profile.Age,
		Sex:            string(profile.Sex),
		MedicalHistory: nonNil(profile.MedicalHistory),
		Medications:    nonNil(profile.Medications),
		Allergies:      nonNil(profile.Allergies),
	}
}

func toAssessmentPayload(a domain.Assessment) assessmentPayload {
	conditions := make([]conditionPayload, 0, len(a.ProbableConditions))
	for _, c := range a.ProbableConditions {
		conditions = append(conditions, conditionPayload{
			Name:            c.Name,
			Probability:     c.Probability,
			Description:     c.Description,
			UrgencyLevel:    c.UrgencyLevel,
			Recommendations: nonNil(c.Recommendations),
		})
	}

	return assessmentPayload{
		Urgency:             string(a.Urgency.Known()),
		EmergencyWarning:    a.EmergencyWarning,
		ProbableConditions:  conditions,
		ClarifyingQuestions: nonNil(a.ClarifyingQuestions),
		Reasoning:           a.Reasoning,
		Recommendations:     nonNil(a.Recommendations),
		BodySystemsAffected: nonNil(a.AffectedBodySystems),
		Disclaimer:          a.Disclaimer,
	}
}

func (p assessmentPayload) toDomain() domain.Assessment {
	var conditions []domain.Condition
	for _, c := range p.ProbableConditions {
		conditions = append(conditions, domain.Condition{
			Name:            c.Name,
			Probability:     c.Probability,
			Description:     c.Description,
			UrgencyLevel:    c.UrgencyLevel,
			Recommendations: c.Recommendations,
		})
	}

	return domain.Assessment{
		Urgency:             domain.Urgency(p.Urgency).Known(),
		EmergencyWarning:    p.EmergencyWarning,
		ProbableConditions:  conditions,
		ClarifyingQuestions: p.ClarifyingQuestions,
		Reasoning:           p.Reasoning,
		Recommendations:     p.Recommendations,
		AffectedBodySystems: p.BodySystemsAffected,
		Disclaimer:          p.Disclaimer,
	}
}

func (h historyResponse) toDomain() domain.ConversationHistory {
	turns := make([]domain.HistoryTurn, 0, len(h.Turns))
	for _, t := range h.Turns {
		turns = append(turns, domain.HistoryTurn{
			UserMessage:       t.UserMessage,
			AssistantResponse: t.AssistantResponse.toDomain(),
			Timestamp:         parseTimestamp(t.Timestamp),
			SeverityReported:  t.SeverityReported,
		})
	}

	total := h.TotalTurns
	if total == 0 {
		total = len(turns)
	}

	return domain.ConversationHistory{
		SessionID:   h.SessionID,
		Turns:       turns,
		TotalTurns:  total,
		CreatedAt:   parseTimestamp(h.CreatedAt),
		LastUpdated: parseTimestamp(h.LastUpdated),
		Summary:     h.Summary,
	}
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp accepts RFC 3339 and naive ISO 8601 values (read as UTC).
// Unparseable values yield the zero time.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
