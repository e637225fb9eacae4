package domain

import "time"

type PatientInfo struct {
	Age int
	Sex Sex
}

// SavedAssessmentRecord outlives the session that produced it.
type SavedAssessmentRecord struct {
	ID          string
	SessionID   string
	Assessment  Assessment
	Timestamp   time.Time
	PatientInfo PatientInfo
}

type PersistenceTier string

const (
	TierRemote PersistenceTier = "remote"
	TierLocal  PersistenceTier = "local"
)
