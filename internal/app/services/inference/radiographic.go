package inference

import (
	"thirdopinion-service/internal/app/config"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"time"
)

// RadiographicProgressionObservationBuilder assembles an Observation for
// radiographic disease progression. A single builder covers the
// clinician-observed, RECIST 1.1, and PCWG3 variants; the criteria type
// picks the category and method tables.
type RadiographicProgressionObservationBuilder struct {
	criteriaType CriteriaType
	clinicalObservationBuilder
	criteriaVersion    string
	determination      Determination
	determinationSet   bool
	newLesions         *bool
	targetResponse     string
	nonTargetResponse  string
	lesionDescriptions []string
}

func NewRadiographicProgressionObservationBuilder(aiConfig *config.AIInference, criteriaType CriteriaType) *RadiographicProgressionObservationBuilder {
	builder := &RadiographicProgressionObservationBuilder{
		criteriaType: criteriaType,
	}
	applyInferenceConfig(&builder.clinicalObservationBuilder, aiConfig)
	return builder
}

func (b *RadiographicProgressionObservationBuilder) WithPatient(patientID string) *RadiographicProgressionObservationBuilder {
	b.setPatient(patientID)
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithDevice(deviceID string) *RadiographicProgressionObservationBuilder {
	b.setDevice(deviceID)
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithFocus(references ...fhir_dto.Reference) *RadiographicProgressionObservationBuilder {
	b.addFocus(references...)
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithCriteriaVersion(version string) *RadiographicProgressionObservationBuilder {
	b.criteriaVersion = version
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithDetermination(determination Determination) *RadiographicProgressionObservationBuilder {
	b.determination = determination
	b.determinationSet = true
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithNewLesions(present bool) *RadiographicProgressionObservationBuilder {
	b.newLesions = &present
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithTargetLesionResponse(response string) *RadiographicProgressionObservationBuilder {
	b.targetResponse = response
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithNonTargetLesionResponse(response string) *RadiographicProgressionObservationBuilder {
	b.nonTargetResponse = response
	return b
}

func (b *RadiographicProgressionObservationBuilder) AddLesionDescription(description string) *RadiographicProgressionObservationBuilder {
	if description != "" {
		b.lesionDescriptions = append(b.lesionDescriptions, description)
	}
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithConfidence(score float64) *RadiographicProgressionObservationBuilder {
	b.setConfidence(score)
	return b
}

func (b *RadiographicProgressionObservationBuilder) WithEffectiveDate(effective time.Time) *RadiographicProgressionObservationBuilder {
	b.setEffectiveDate(effective)
	return b
}

func (b *RadiographicProgressionObservationBuilder) AddEvidence(reference, display string) *RadiographicProgressionObservationBuilder {
	b.addEvidence(reference, display)
	return b
}

func (b *RadiographicProgressionObservationBuilder) AddNote(text string) *RadiographicProgressionObservationBuilder {
	b.addNote(text)
	return b
}

func (b *RadiographicProgressionObservationBuilder) AddSupportingFact(fact Fact) *RadiographicProgressionObservationBuilder {
	b.addSupportingFact(fact)
	return b
}

func (b *RadiographicProgressionObservationBuilder) AddConflictingFact(fact Fact) *RadiographicProgressionObservationBuilder {
	b.addConflictingFact(fact)
	return b
}

func (b *RadiographicProgressionObservationBuilder) Build() (*fhir_dto.Observation, error) {
	if err := b.validateRequired(); err != nil {
		return nil, err
	}
	if !b.determinationSet {
		return nil, exceptions.ErrRequiredFieldMissing("determination", "WithDetermination")
	}

	value, err := b.determination.Concept()
	if err != nil {
		return nil, err
	}
	method, err := b.criteriaType.methodConcept()
	if err != nil {
		return nil, err
	}

	observation := b.newObservation(
		b.criteriaType.categoryCode(),
		loincConcept(constvars.LoincCancerDiseaseStatus, "Response to cancer treatment"),
	)
	observation.Code.Text = "Radiographic disease progression"
	observation.ValueCodeableConcept = &value
	if method != nil {
		if b.criteriaVersion != "" {
			method.Coding[0].Version = b.criteriaVersion
		}
		observation.Method = method
	}

	entries := []componentEntry{
		{
			present: b.newLesions != nil,
			code:    constvars.ComponentCodeNewLesions,
			display: "New lesions present",
			apply: func(component *fhir_dto.ObservationComponent) {
				booleanValue(*b.newLesions)(component)
			},
		},
		{
			present: b.targetResponse != "",
			code:    constvars.ComponentCodeTargetResponse,
			display: "Target lesion response",
			apply:   stringValue(b.targetResponse),
		},
		{
			present: b.nonTargetResponse != "",
			code:    constvars.ComponentCodeNonTargetResponse,
			display: "Non-target lesion response",
			apply:   stringValue(b.nonTargetResponse),
		},
	}
	for _, description := range b.lesionDescriptions {
		entries = append(entries, componentEntry{
			present: true,
			code:    constvars.ComponentCodeLesionDescription,
			display: "Lesion description",
			apply:   stringValue(description),
		})
	}
	appendComponents(observation, entries)

	return observation, nil
}

// BuildCondition derives the implied Condition. It is only legal when the
// determination indicates progressive disease.
func (b *RadiographicProgressionObservationBuilder) BuildCondition(observation *fhir_dto.Observation) (*fhir_dto.Condition, error) {
	determination := Determination("")
	if b.determinationSet {
		determination = b.determination
	}
	return b.deriveCondition(observation, determination, "Radiographically progressive prostate cancer")
}
