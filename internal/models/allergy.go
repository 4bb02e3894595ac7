package models

type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// Allergy is a single member/allergen/severity record. The id is assigned
// by the database on insert and the record is immutable afterwards.
type Allergy struct {
	AllergyID int64    `json:"allergy_id"`
	MemberID  string   `json:"member_id"`
	Allergen  string   `json:"allergen"`
	Severity  Severity `json:"severity"`
}
