package chat

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bnema/symcheck/internal/application"
	"github.com/bnema/symcheck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const timestampLayout = "Jan 2, 2006 15:04"

func RenderTurns(turns []domain.ConversationTurn) (string, error) {
	return render(func(s styles) string {
		if len(turns) == 0 {
			return s.empty.Render("No messages yet.")
		}

		blocks := make([]string, 0, len(turns))
		for i, turn := range turns {
			block := turnView(turn, s)
			if i > 0 {
				block = s.section.Render(block)
			}
			blocks = append(blocks, block)
		}
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	})
}

func RenderTurn(turn domain.ConversationTurn) (string, error) {
	return render(func(s styles) string {
		return turnView(turn, s)
	})
}

func RenderEmergencyPanel(panel application.EmergencyPanel) (string, error) {
	return render(func(s styles) string {
		return panelView(panel, s)
	})
}

func RenderSaved(records []domain.SavedAssessmentRecord) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Saved Assessments"),
			s.header.Render(fmt.Sprintf("records: %d", len(records))),
		}
		if len(records) == 0 {
			lines = append(lines, s.empty.Render("No saved assessments yet."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, record := range records {
			lines = append(lines, s.section.Render(savedRecordView(record, s)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderHistory(history domain.ConversationHistory) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Conversation " + history.SessionID),
			s.header.Render(fmt.Sprintf("turns: %d  started: %s  updated: %s",
				history.TotalTurns, formatTimestamp(history.CreatedAt), formatTimestamp(history.LastUpdated))),
		}
		if strings.TrimSpace(history.Summary) != "" {
			lines = append(lines, s.detail.Render(history.Summary))
		}
		if len(history.Turns) == 0 {
			lines = append(lines, s.empty.Render("No turns recorded."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for i, turn := range history.Turns {
			parts := []string{userLine(turn.UserMessage, turn.SeverityReported, s)}
			parts = append(parts, assessmentView(turn.AssistantResponse, i+1, s))
			lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderHealth(status domain.HealthStatus) (string, error) {
	return render(func(s styles) string {
		state := s.warning.Render(status.Status)
		if status.Healthy() {
			state = s.ok.Render(status.Status)
		}
		lines := []string{s.title.Render("Gateway: ") + state}

		names := make([]string, 0, len(status.Services))
		for name := range status.Services {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			lines = append(lines, s.detail.Render(fmt.Sprintf("  %s: %s", name, status.Services[name])))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func RenderSaveOutcome(outcome application.SaveOutcome) (string, error) {
	return render(func(s styles) string {
		if !outcome.Degraded() {
			return s.ok.Render("Assessment saved.")
		}
		return lipgloss.JoinVertical(lipgloss.Left,
			s.apology.Render("Assessment saved locally (the server could not be reached)."),
			s.header.Render("record: "+outcome.RecordID),
		)
	})
}

func turnView(turn domain.ConversationTurn, s styles) string {
	if turn.Role == domain.RoleUser {
		return userLine(turn.Content, turn.Severity, s)
	}
	if turn.Assessment == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.assistant.Render("Assistant"),
			s.apology.Render(turn.Content),
		)
	}
	return assessmentView(*turn.Assessment, 0, s)
}

func userLine(text string, severity *int, s styles) string {
	label := s.user.Render("You")
	if severity != nil {
		band := domain.SeverityEcho(*severity)
		label += " " + severityStyle(band.Level).Render(fmt.Sprintf("(severity %d/10, %s)", *severity, band.Level))
	}
	return label + s.detail.Render(": "+text)
}

func assessmentView(a domain.Assessment, turnNumber int, s styles) string {
	escalation := domain.Classify(a.Urgency)

	title := "Assessment"
	if turnNumber > 0 {
		title = fmt.Sprintf("Assessment (turn %d)", turnNumber)
	}
	parts := []string{
		s.assistant.Render(title) + " " + urgencyStyle(escalation.Tier).Render(strings.ToUpper(string(escalation.Urgency))),
	}
	if a.IsEmergency() {
		parts = append(parts, s.warning.Render(a.Normalize().EmergencyWarning))
	}

	if len(a.ProbableConditions) > 0 {
		parts = append(parts, s.heading.Render("Probable Conditions"))
		for _, c := range a.ProbableConditions {
			parts = append(parts, conditionLines(c, s)...)
		}
	}
	if strings.TrimSpace(a.Reasoning) != "" {
		parts = append(parts, s.heading.Render("Reasoning"), s.detail.Render(a.Reasoning))
	}
	parts = appendList(parts, "Recommendations", a.Recommendations, s)
	parts = appendList(parts, "Follow-up Questions", a.ClarifyingQuestions, s)
	if len(a.AffectedBodySystems) > 0 {
		parts = append(parts, s.heading.Render("Body Systems Affected"), s.detail.Render(strings.Join(a.AffectedBodySystems, ", ")))
	}
	if strings.TrimSpace(a.Disclaimer) != "" {
		parts = append(parts, s.disclaimer.Render(a.Disclaimer))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func conditionLines(c domain.Condition, s styles) []string {
	band := domain.ConfidenceFor(c.Probability)
	percent := int(math.Round(c.Probability * 100))
	lines := []string{
		s.bullet.Render("  * ") + s.detail.Render(c.Name) + " " + confidenceStyle(band).Render(fmt.Sprintf("%d%% confidence", percent)),
	}
	if strings.TrimSpace(c.Description) != "" {
		lines = append(lines, s.header.Render("    "+c.Description))
	}
	for _, rec := range c.Recommendations {
		lines = append(lines, s.bullet.Render("    - ")+s.detail.Render(rec))
	}
	return lines
}

func appendList(parts []string, heading string, items []string, s styles) []string {
	if len(items) == 0 {
		return parts
	}
	parts = append(parts, s.heading.Render(heading))
	for _, item := range items {
		parts = append(parts, s.bullet.Render("  - ")+s.detail.Render(item))
	}
	return parts
}

func panelView(panel application.EmergencyPanel, s styles) string {
	parts := []string{
		s.panelTitle.Render("MEDICAL EMERGENCY DETECTED"),
		s.detail.Render(panel.Warning),
		s.call.Render(fmt.Sprintf(" Call %s immediately ", panel.Number)),
	}
	if len(panel.Recommendations) > 0 {
		parts = append(parts, s.heading.Render("Immediate Actions"))
		for _, rec := range panel.Recommendations {
			parts = append(parts, s.bullet.Render("  - ")+s.detail.Render(rec))
		}
	}
	parts = append(parts, s.header.Render("Type /call to contact emergency services."))

	return s.panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func savedRecordView(record domain.SavedAssessmentRecord, s styles) string {
	escalation := domain.Classify(record.Assessment.Urgency)
	header := s.title.Render(formatTimestamp(record.Timestamp)) + " " +
		urgencyStyle(escalation.Tier).Render(strings.ToUpper(string(escalation.Urgency)))

	parts := []string{
		header,
		s.header.Render(fmt.Sprintf("session: %s  patient: %d, %s", record.SessionID, record.PatientInfo.Age, record.PatientInfo.Sex)),
	}
	if len(record.Assessment.ProbableConditions) > 0 {
		top := record.Assessment.ProbableConditions[0]
		parts = append(parts, s.detail.Render(fmt.Sprintf("top condition: %s (%d%%)", top.Name, int(math.Round(top.Probability*100)))))
	}
	if record.Assessment.IsEmergency() && strings.TrimSpace(record.Assessment.EmergencyWarning) != "" {
		parts = append(parts, s.warning.Render(record.Assessment.EmergencyWarning))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return "unknown"
	}
	return ts.Format(timestampLayout)
}
