package domain

import (
	"slices"
	"strings"
)

const (
	MinPatientAge = 1
	MaxPatientAge = 150
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

func ParseSex(raw string) (Sex, error) {
	switch sex := Sex(strings.ToLower(strings.TrimSpace(raw))); sex {
	case SexMale, SexFemale, SexOther:
		return sex, nil
	default:
		return "", validationErr("unsupported sex %q", raw)
	}
}

// PatientProfile is built interactively and frozen (cloned) once a session
// starts. The three lists behave as ordered sets.
type PatientProfile struct {
	Age            int
	Sex            Sex
	MedicalHistory []string
	Medications    []string
	Allergies      []string
}

func (p PatientProfile) Validate() error {
	if p.Age < MinPatientAge {
		return validationErr("age must be at least %d", MinPatientAge)
	}
	if p.Age > MaxPatientAge {
		return validationErr("age must be at most %d", MaxPatientAge)
	}
	if _, err := ParseSex(string(p.Sex)); err != nil {
		return err
	}

	return nil
}

func (p *PatientProfile) AddMedicalHistory(item string) bool {
	return addOrdered(&p.MedicalHistory, item)
}

func (p *PatientProfile) RemoveMedicalHistory(item string) bool {
	return removeOrdered(&p.MedicalHistory, item)
}

func (p *PatientProfile) AddMedication(item string) bool {
	return addOrdered(&p.Medications, item)
}

func (p *PatientProfile) RemoveMedication(item string) bool {
	return removeOrdered(&p.Medications, item)
}

func (p *PatientProfile) AddAllergy(item string) bool {
	return addOrdered(&p.Allergies, item)
}

func (p *PatientProfile) RemoveAllergy(item string) bool {
	return removeOrdered(&p.Allergies, item)
}

func (p PatientProfile) Clone() PatientProfile {
	return PatientProfile{
		Age:            p.Age,
		Sex:            p.Sex,
		MedicalHistory: cloneStrings(p.MedicalHistory),
		Medications:    cloneStrings(p.Medications),
		Allergies:      cloneStrings(p.Allergies),
	}
}

func (p PatientProfile) Summary() PatientInfo {
	return PatientInfo{Age: p.Age, Sex: p.Sex}
}

// NormalizeLists rebuilds each list as an ordered set, dropping blanks and
// duplicates while keeping first occurrences.
func (p *PatientProfile) NormalizeLists() {
	for _, list := range []*[]string{&p.MedicalHistory, &p.Medications, &p.Allergies} {
		items := *list
		*list = make([]string, 0, len(items))
		for _, item := range items {
			addOrdered(list, item)
		}
	}
}

func addOrdered(list *[]string, item string) bool {
	trimmed := strings.TrimSpace(item)
	if trimmed == "" || slices.Contains(*list, trimmed) {
		return false
	}

	*list = append(*list, trimmed)
	return true
}

func removeOrdered(list *[]string, item string) bool {
	idx := slices.Index(*list, strings.TrimSpace(item))
	if idx < 0 {
		return false
	}

	*list = slices.Delete(*list, idx, idx+1)
	return true
}

func cloneStrings(items []string) []string {
	if items == nil {
		return []string{}
	}

	return slices.Clone(items)
}
