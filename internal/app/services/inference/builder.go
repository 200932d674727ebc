package inference

import (
	"thirdopinion-service/internal/app/config"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"thirdopinion-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

const inferenceIdentifierSystem = "https://thirdopinion.io/fhir/identifier/inference"

// applyInferenceConfig seeds the shared fields a deployment configures once:
// the emitted observation status and, when set, a default inference device.
// Explicit setter calls override both.
func applyInferenceConfig(b *clinicalObservationBuilder, aiConfig *config.AIInference) {
	if aiConfig == nil {
		return
	}
	if aiConfig.ObservationStatus != "" {
		b.setStatus(aiConfig.ObservationStatus)
	}
	if aiConfig.DefaultDeviceID != "" {
		b.setDevice(aiConfig.DefaultDeviceID)
	}
}

// clinicalObservationBuilder accumulates the fields every inference builder
// shares: subject, device, focus, timing, confidence, evidence, notes, and
// structured facts. Concrete builders embed it and re-expose the setters on
// their own type to keep the fluent chain.
//
// Violations detected at setter time (confidence out of range, empty focus
// list, wrong focus resource type) are recorded as a sticky error and
// surfaced by Build; required-field checks run at Build.
type clinicalObservationBuilder struct {
	status           string
	patient          *fhir_dto.Reference
	device           *fhir_dto.Reference
	focus            []fhir_dto.Reference
	effective        time.Time
	confidence       *float64
	derivedFrom      []fhir_dto.Reference
	notes            []string
	supportingFacts  []Fact
	conflictingFacts []Fact
	err              error
}

func (b *clinicalObservationBuilder) recordErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *clinicalObservationBuilder) setStatus(status string) {
	b.status = status
}

func (b *clinicalObservationBuilder) setPatient(patientID string) {
	b.patient = &fhir_dto.Reference{
		Reference: utils.EnsureReferencePrefix(constvars.ResourcePatient, patientID),
		Type:      constvars.ResourcePatient,
	}
}

func (b *clinicalObservationBuilder) setDevice(deviceID string) {
	b.device = &fhir_dto.Reference{
		Reference: utils.EnsureReferencePrefix(constvars.ResourceDevice, deviceID),
		Type:      constvars.ResourceDevice,
	}
}

func (b *clinicalObservationBuilder) addFocus(references ...fhir_dto.Reference) {
	if len(references) == 0 {
		b.recordErr(exceptions.ErrEmptyFocusList())
		return
	}
	b.focus = append(b.focus, references...)
}

func (b *clinicalObservationBuilder) setEffectiveDate(effective time.Time) {
	b.effective = effective
}

func (b *clinicalObservationBuilder) setConfidence(score float64) {
	if score < 0.0 || score > 1.0 {
		b.recordErr(exceptions.ErrConfidenceOutOfRange(score))
		return
	}
	b.confidence = &score
}

func (b *clinicalObservationBuilder) addEvidence(reference, display string) {
	b.derivedFrom = append(b.derivedFrom, fhir_dto.Reference{
		Reference: reference,
		Display:   display,
	})
}

func (b *clinicalObservationBuilder) addNote(text string) {
	b.notes = append(b.notes, text)
}

func (b *clinicalObservationBuilder) addSupportingFact(fact Fact) {
	prepared, err := prepareFact(fact)
	if err != nil {
		b.recordErr(err)
		return
	}
	b.supportingFacts = append(b.supportingFacts, prepared)
}

func (b *clinicalObservationBuilder) addConflictingFact(fact Fact) {
	prepared, err := prepareFact(fact)
	if err != nil {
		b.recordErr(err)
		return
	}
	b.conflictingFacts = append(b.conflictingFacts, prepared)
}

// validateRequired runs the shared required-field checks and returns the
// sticky setter-time error first if one was recorded.
func (b *clinicalObservationBuilder) validateRequired() error {
	if b.err != nil {
		return b.err
	}
	if b.patient == nil {
		return exceptions.ErrRequiredFieldMissing("patient", "WithPatient")
	}
	if b.device == nil {
		return exceptions.ErrRequiredFieldMissing("device", "WithDevice")
	}
	return nil
}

// newObservation assembles the shared skeleton: status, category, code,
// subject, device, focus, timing, identifier, deduplicated derived-from
// references, fact extensions, confidence component, and notes.
func (b *clinicalObservationBuilder) newObservation(category string, code fhir_dto.CodeableConcept) *fhir_dto.Observation {
	now := time.Now()
	effective := b.effective
	if effective.IsZero() {
		effective = now
	}
	status := b.status
	if status == "" {
		status = constvars.ObservationStatusPreliminary
	}

	observation := &fhir_dto.Observation{
		ResourceType:      constvars.ResourceObservation,
		ID:                uuid.NewString(),
		Status:            status,
		Category:          []fhir_dto.CodeableConcept{observationCategory(category)},
		Code:              code,
		Subject:           *b.patient,
		Device:            b.device,
		Focus:             b.focus,
		EffectiveDateTime: utils.FormatFHIRDateTime(effective),
		Issued:            utils.FormatFHIRDateTime(now),
		DerivedFrom:       utils.DedupeReferences(b.derivedFrom),
	}
	observation.Identifier = []fhir_dto.Identifier{{
		System: inferenceIdentifierSystem,
		Value:  observation.ID,
	}}

	if b.confidence != nil {
		observation.Component = append(observation.Component, fhir_dto.ObservationComponent{
			Code: toiComponentConcept(constvars.ComponentCodeConfidence, "Inference confidence score"),
			ValueQuantity: &fhir_dto.Quantity{
				Value:  *b.confidence,
				System: constvars.SystemUCUM,
				Code:   constvars.UcumScore,
			},
		})
	}

	for _, fact := range b.supportingFacts {
		observation.Extension = append(observation.Extension, factExtension(constvars.ExtensionSupportingFactURL, fact))
	}
	for _, fact := range b.conflictingFacts {
		observation.Extension = append(observation.Extension, factExtension(constvars.ExtensionConflictingFactURL, fact))
	}

	for _, note := range b.notes {
		observation.Note = append(observation.Note, fhir_dto.Annotation{
			Time: utils.FormatFHIRDateTime(now),
			Text: note,
		})
	}

	return observation
}

// componentEntry drives the "append only if present" component assembly so
// each builder declares its optional fields as data instead of repeated
// conditionals.
type componentEntry struct {
	present bool
	code    string
	display string
	apply   func(component *fhir_dto.ObservationComponent)
}

func appendComponents(observation *fhir_dto.Observation, entries []componentEntry) {
	for _, entry := range entries {
		if !entry.present {
			continue
		}
		component := fhir_dto.ObservationComponent{
			Code: toiComponentConcept(entry.code, entry.display),
		}
		entry.apply(&component)
		observation.Component = append(observation.Component, component)
	}
}

func quantityValue(value float64, unit string) func(*fhir_dto.ObservationComponent) {
	return func(component *fhir_dto.ObservationComponent) {
		component.ValueQuantity = &fhir_dto.Quantity{
			Value:  value,
			Unit:   unit,
			System: constvars.SystemUCUM,
			Code:   unit,
		}
	}
}

func booleanValue(value bool) func(*fhir_dto.ObservationComponent) {
	return func(component *fhir_dto.ObservationComponent) {
		component.ValueBoolean = &value
	}
}

func stringValue(value string) func(*fhir_dto.ObservationComponent) {
	return func(component *fhir_dto.ObservationComponent) {
		component.ValueString = value
	}
}

func dateValue(value time.Time) func(*fhir_dto.ObservationComponent) {
	return func(component *fhir_dto.ObservationComponent) {
		component.ValueDateTime = utils.FormatFHIRDate(value)
	}
}
