package inference

import (
	"thirdopinion-service/internal/app/config"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"thirdopinion-service/internal/pkg/utils"
	"time"
)

// AdtStatusObservationBuilder assembles an Observation stating whether the
// patient is currently on androgen deprivation therapy.
type AdtStatusObservationBuilder struct {
	clinicalObservationBuilder
	active         *bool
	treatmentStart *time.Time
}

func NewAdtStatusObservationBuilder(aiConfig *config.AIInference) *AdtStatusObservationBuilder {
	builder := &AdtStatusObservationBuilder{}
	applyInferenceConfig(&builder.clinicalObservationBuilder, aiConfig)
	return builder
}

func (b *AdtStatusObservationBuilder) WithPatient(patientID string) *AdtStatusObservationBuilder {
	b.setPatient(patientID)
	return b
}

func (b *AdtStatusObservationBuilder) WithDevice(deviceID string) *AdtStatusObservationBuilder {
	b.setDevice(deviceID)
	return b
}

func (b *AdtStatusObservationBuilder) WithFocus(references ...fhir_dto.Reference) *AdtStatusObservationBuilder {
	b.addFocus(references...)
	return b
}

// WithStatus records whether ADT is currently active.
func (b *AdtStatusObservationBuilder) WithStatus(active bool) *AdtStatusObservationBuilder {
	b.active = &active
	return b
}

func (b *AdtStatusObservationBuilder) WithTreatmentStartDate(start time.Time) *AdtStatusObservationBuilder {
	b.treatmentStart = &start
	return b
}

func (b *AdtStatusObservationBuilder) WithConfidence(score float64) *AdtStatusObservationBuilder {
	b.setConfidence(score)
	return b
}

func (b *AdtStatusObservationBuilder) WithEffectiveDate(effective time.Time) *AdtStatusObservationBuilder {
	b.setEffectiveDate(effective)
	return b
}

func (b *AdtStatusObservationBuilder) AddEvidence(reference, display string) *AdtStatusObservationBuilder {
	b.addEvidence(reference, display)
	return b
}

func (b *AdtStatusObservationBuilder) AddNote(text string) *AdtStatusObservationBuilder {
	b.addNote(text)
	return b
}

func (b *AdtStatusObservationBuilder) AddSupportingFact(fact Fact) *AdtStatusObservationBuilder {
	b.addSupportingFact(fact)
	return b
}

func (b *AdtStatusObservationBuilder) AddConflictingFact(fact Fact) *AdtStatusObservationBuilder {
	b.addConflictingFact(fact)
	return b
}

func (b *AdtStatusObservationBuilder) Build() (*fhir_dto.Observation, error) {
	if err := b.validateRequired(); err != nil {
		return nil, err
	}
	if b.active == nil {
		return nil, exceptions.ErrRequiredFieldMissing("status", "WithStatus")
	}

	observation := b.newObservation(
		constvars.ObservationCategoryTherapy,
		snomedConcept(constvars.SnomedADTTherapy, "Androgen deprivation therapy"),
	)

	value := snomedConcept(constvars.SnomedInactive, "Inactive")
	if *b.active {
		value = snomedConcept(constvars.SnomedActive, "Active")
	}
	observation.ValueCodeableConcept = &value

	if b.treatmentStart != nil {
		observation.Extension = append(observation.Extension, fhir_dto.Extension{
			Url:       constvars.ExtensionTreatmentStartDateURL,
			ValueDate: utils.FormatFHIRDate(*b.treatmentStart),
		})
	}
	appendComponents(observation, []componentEntry{
		{
			present: b.treatmentStart != nil,
			code:    constvars.ComponentCodeTreatmentStart,
			display: "Treatment start date",
			apply: func(component *fhir_dto.ObservationComponent) {
				dateValue(*b.treatmentStart)(component)
			},
		},
	})

	return observation, nil
}
