package domain

type Tier string

const (
	TierNormal   Tier = "normal"
	TierElevated Tier = "elevated"
	TierCritical Tier = "critical"
)

// Escalation is what the UI must do for an assessment urgency.
type Escalation struct {
	Urgency        Urgency
	Tier           Tier
	EmergencyPanel bool
	CallAffordance bool
	WarningStyle   bool
}

// Classify never fails: unrecognized labels are handled as routine.
func Classify(urgency Urgency) Escalation {
	switch urgency.Known() {
	case UrgencyEmergency:
		return Escalation{
			Urgency:        UrgencyEmergency,
			Tier:           TierCritical,
			EmergencyPanel: true,
			CallAffordance: true,
			WarningStyle:   true,
		}
	case UrgencyUrgent:
		return Escalation{Urgency: UrgencyUrgent, Tier: TierElevated, WarningStyle: true}
	default:
		return Escalation{Urgency: UrgencyRoutine, Tier: TierNormal}
	}
}

type SeverityLevel string

const (
	SeverityLevelCritical SeverityLevel = "critical"
	SeverityLevelHigh     SeverityLevel = "high"
	SeverityLevelModerate SeverityLevel = "moderate"
	SeverityLevelLow      SeverityLevel = "low"
)

type SeverityBand struct {
	Tier  Tier
	Level SeverityLevel
}

// SeverityEcho maps the raw 1-10 slider value to the band used when echoing an
// outgoing message. It is independent of the gateway urgency.
func SeverityEcho(severity int) SeverityBand {
	switch {
	case severity >= 8:
		return SeverityBand{Tier: TierCritical, Level: SeverityLevelCritical}
	case severity >= 6:
		return SeverityBand{Tier: TierElevated, Level: SeverityLevelHigh}
	case severity >= 4:
		return SeverityBand{Tier: TierElevated, Level: SeverityLevelModerate}
	default:
		return SeverityBand{Tier: TierNormal, Level: SeverityLevelLow}
	}
}

type ConfidenceBand string

const (
	ConfidenceHigh    ConfidenceBand = "high"
	ConfidenceMedium  ConfidenceBand = "medium"
	ConfidenceLow     ConfidenceBand = "low"
	ConfidenceVeryLow ConfidenceBand = "very_low"
)

func ConfidenceFor(probability float64) ConfidenceBand {
	switch {
	case probability >= 0.8:
		return ConfidenceHigh
	case probability >= 0.6:
		return ConfidenceMedium
	case probability >= 0.4:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
