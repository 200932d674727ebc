package fhir_dto

type Condition struct {
	ResourceType       string              `json:"resourceType"`
	ID                 string              `json:"id,omitempty"`
	Meta               *Meta               `json:"meta,omitempty"`
	Identifier         []Identifier        `json:"identifier,omitempty"`
	ClinicalStatus     *CodeableConcept    `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept    `json:"verificationStatus,omitempty"`
	Category           []CodeableConcept   `json:"category,omitempty"`
	Code               CodeableConcept     `json:"code"`
	BodySite           []CodeableConcept   `json:"bodySite,omitempty"`
	Subject            Reference           `json:"subject"`
	OnsetDateTime      string              `json:"onsetDateTime,omitempty"`
	RecordedDate       string              `json:"recordedDate,omitempty"`
	Evidence           []ConditionEvidence `json:"evidence,omitempty"`
	Extension          []Extension         `json:"extension,omitempty"`
	Note               []Annotation        `json:"note,omitempty"`
}

type ConditionEvidence struct {
	Code   []CodeableConcept `json:"code,omitempty"`
	Detail []Reference       `json:"detail,omitempty"`
}
