package domain

import (
	"strings"
	"time"
)

const (
	MinSeverity     = 1
	MaxSeverity     = 10
	DefaultSeverity = 5
	UnknownDuration = "unknown"
)

type SymptomMessage struct {
	SessionID string
	Text      string
	Severity  int
	Duration  string
}

// NewSymptomMessage trims the free-text fields, defaults the duration and
// validates the result.
func NewSymptomMessage(sessionID, text string, severity int, duration string) (SymptomMessage, error) {
	msg := SymptomMessage{
		SessionID: sessionID,
		Text:      strings.TrimSpace(text),
		Severity:  severity,
		Duration:  strings.TrimSpace(duration),
	}
	if msg.Duration == "" {
		msg.Duration = UnknownDuration
	}

	return msg, msg.Validate()
}

func (m SymptomMessage) Validate() error {
	if strings.TrimSpace(m.Text) == "" {
		return validationErr("message text is empty")
	}
	if m.Severity < MinSeverity || m.Severity > MaxSeverity {
		return validationErr("severity must be between %d and %d, got %d", MinSeverity, MaxSeverity, m.Severity)
	}

	return nil
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is committed once and never edited.
type ConversationTurn struct {
	ID         int64
	Role       Role
	Content    string
	Severity   *int
	Assessment *Assessment
	Timestamp  time.Time
}

// HistoryTurn is one exchange as the gateway records it.
type HistoryTurn struct {
	UserMessage       string
	AssistantResponse Assessment
	Timestamp         time.Time
	SeverityReported  *int
}

type ConversationHistory struct {
	SessionID   string
	Turns       []HistoryTurn
	TotalTurns  int
	CreatedAt   time.Time
	LastUpdated time.Time
	Summary     string
}

type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatText ExportFormat = "text"
)

func ParseExportFormat(raw string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case ExportFormatJSON, ExportFormatText:
		return f, nil
	default:
		return "", ErrUnknownExportFormat
	}
}
