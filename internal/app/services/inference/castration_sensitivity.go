package inference

import (
	"strings"
	"thirdopinion-service/internal/app/config"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"thirdopinion-service/internal/pkg/utils"
	"time"
)

// CastrationSensitivityObservationBuilder assembles an Observation stating
// whether the prostate cancer is castration-sensitive or -resistant. The
// focus must point at the Condition being characterized.
type CastrationSensitivityObservationBuilder struct {
	clinicalObservationBuilder
	status    CastrationStatus
	statusSet bool
}

func NewCastrationSensitivityObservationBuilder(aiConfig *config.AIInference) *CastrationSensitivityObservationBuilder {
	builder := &CastrationSensitivityObservationBuilder{}
	applyInferenceConfig(&builder.clinicalObservationBuilder, aiConfig)
	return builder
}

func (b *CastrationSensitivityObservationBuilder) WithPatient(patientID string) *CastrationSensitivityObservationBuilder {
	b.setPatient(patientID)
	return b
}

func (b *CastrationSensitivityObservationBuilder) WithDevice(deviceID string) *CastrationSensitivityObservationBuilder {
	b.setDevice(deviceID)
	return b
}

// WithFocusCondition records the Condition the sensitivity statement is
// about. References carrying a non-Condition type prefix are rejected the
// moment the setter runs; bare ids are prefixed with "Condition/".
func (b *CastrationSensitivityObservationBuilder) WithFocusCondition(conditionReference string) *CastrationSensitivityObservationBuilder {
	if strings.Contains(conditionReference, "/") && !utils.HasResourcePrefix(conditionReference, constvars.ResourceCondition) {
		b.recordErr(exceptions.ErrFocusNotCondition(conditionReference))
		return b
	}
	b.addFocus(fhir_dto.Reference{
		Reference: utils.EnsureReferencePrefix(constvars.ResourceCondition, conditionReference),
		Type:      constvars.ResourceCondition,
	})
	return b
}

func (b *CastrationSensitivityObservationBuilder) WithStatus(status CastrationStatus) *CastrationSensitivityObservationBuilder {
	b.status = status
	b.statusSet = true
	return b
}

func (b *CastrationSensitivityObservationBuilder) WithConfidence(score float64) *CastrationSensitivityObservationBuilder {
	b.setConfidence(score)
	return b
}

func (b *CastrationSensitivityObservationBuilder) WithEffectiveDate(effective time.Time) *CastrationSensitivityObservationBuilder {
	b.setEffectiveDate(effective)
	return b
}

func (b *CastrationSensitivityObservationBuilder) AddEvidence(reference, display string) *CastrationSensitivityObservationBuilder {
	b.addEvidence(reference, display)
	return b
}

func (b *CastrationSensitivityObservationBuilder) AddNote(text string) *CastrationSensitivityObservationBuilder {
	b.addNote(text)
	return b
}

func (b *CastrationSensitivityObservationBuilder) AddSupportingFact(fact Fact) *CastrationSensitivityObservationBuilder {
	b.addSupportingFact(fact)
	return b
}

func (b *CastrationSensitivityObservationBuilder) AddConflictingFact(fact Fact) *CastrationSensitivityObservationBuilder {
	b.addConflictingFact(fact)
	return b
}

func (b *CastrationSensitivityObservationBuilder) Build() (*fhir_dto.Observation, error) {
	if err := b.validateRequired(); err != nil {
		return nil, err
	}
	if len(b.focus) == 0 {
		return nil, exceptions.ErrRequiredFieldMissing("focus", "WithFocusCondition")
	}
	if !b.statusSet {
		return nil, exceptions.ErrRequiredFieldMissing("status", "WithStatus")
	}

	value, err := b.status.concept()
	if err != nil {
		return nil, err
	}

	observation := b.newObservation(
		constvars.ObservationCategoryExam,
		snomedConcept(constvars.SnomedProstateCancer, "Malignant tumor of prostate"),
	)
	observation.Code.Text = "Castration sensitivity"
	observation.ValueCodeableConcept = &value

	return observation, nil
}
