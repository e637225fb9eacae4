package chat

import (
	"github.com/bnema/symcheck/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	user       lipgloss.Style
	assistant  lipgloss.Style
	detail     lipgloss.Style
	heading    lipgloss.Style
	bullet     lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	disclaimer lipgloss.Style
	apology    lipgloss.Style
	panel      lipgloss.Style
	panelTitle lipgloss.Style
	call       lipgloss.Style
	ok         lipgloss.Style
	warning    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		user:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		assistant:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		bullet:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		disclaimer: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		apology:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		panel: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 1),
		panelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		call:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")),
		ok:         lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func urgencyStyle(tier domain.Tier) lipgloss.Style {
	switch tier {
	case domain.TierCritical:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	case domain.TierElevated:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	}
}

func severityStyle(level domain.SeverityLevel) lipgloss.Style {
	switch level {
	case domain.SeverityLevelCritical:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	case domain.SeverityLevelHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	case domain.SeverityLevelModerate:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	}
}

func confidenceStyle(band domain.ConfidenceBand) lipgloss.Style {
	switch band {
	case domain.ConfidenceHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	case domain.ConfidenceMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	case domain.ConfidenceLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	}
}
