package inference

import (
	"strings"
	"thirdopinion-service/internal/app/config"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"time"

	"github.com/shopspring/decimal"
)

// pcwg3CriteriaID marks the criteria identifier that switches the change
// calculation to nadir-relative PCWG3 semantics.
const pcwg3CriteriaID = "PCWG3"

// pcwg3ThresholdPercent is the PCWG3 rise-from-nadir threshold.
const pcwg3ThresholdPercent = 25.0

// PsaProgressionObservationBuilder assembles an Observation describing
// biochemical (PSA) progression. PSA values are tagged with their semantic
// role: the latest measurement, the nadir on therapy, and the pre-therapy
// baseline.
type PsaProgressionObservationBuilder struct {
	clinicalObservationBuilder
	criteriaSystemBase string
	criteriaID         string
	criteriaVersion    string
	determination      *Determination
	currentPSA         *float64
	nadirPSA           *float64
	baselinePSA        *float64
	thresholdMet       *bool
}

func NewPsaProgressionObservationBuilder(aiConfig *config.AIInference) *PsaProgressionObservationBuilder {
	builder := &PsaProgressionObservationBuilder{
		criteriaSystemBase: constvars.SystemTOICriteriaDefault,
	}
	applyInferenceConfig(&builder.clinicalObservationBuilder, aiConfig)
	if aiConfig != nil && aiConfig.CriteriaSystemBase != "" {
		builder.criteriaSystemBase = aiConfig.CriteriaSystemBase
	}
	return builder
}

func (b *PsaProgressionObservationBuilder) WithPatient(patientID string) *PsaProgressionObservationBuilder {
	b.setPatient(patientID)
	return b
}

func (b *PsaProgressionObservationBuilder) WithDevice(deviceID string) *PsaProgressionObservationBuilder {
	b.setDevice(deviceID)
	return b
}

func (b *PsaProgressionObservationBuilder) WithFocus(references ...fhir_dto.Reference) *PsaProgressionObservationBuilder {
	b.addFocus(references...)
	return b
}

// WithCriteria records which progression standard the inference applied.
// The method concept is minted under the configured criteria system base.
func (b *PsaProgressionObservationBuilder) WithCriteria(criteriaID, version string) *PsaProgressionObservationBuilder {
	b.criteriaID = criteriaID
	b.criteriaVersion = version
	return b
}

func (b *PsaProgressionObservationBuilder) WithDetermination(determination Determination) *PsaProgressionObservationBuilder {
	b.determination = &determination
	return b
}

func (b *PsaProgressionObservationBuilder) WithCurrentPSA(value float64) *PsaProgressionObservationBuilder {
	b.currentPSA = &value
	return b
}

func (b *PsaProgressionObservationBuilder) WithNadirPSA(value float64) *PsaProgressionObservationBuilder {
	b.nadirPSA = &value
	return b
}

func (b *PsaProgressionObservationBuilder) WithBaselinePSA(value float64) *PsaProgressionObservationBuilder {
	b.baselinePSA = &value
	return b
}

// WithThresholdMet overrides the auto-generated PCWG3 threshold component.
func (b *PsaProgressionObservationBuilder) WithThresholdMet(met bool) *PsaProgressionObservationBuilder {
	b.thresholdMet = &met
	return b
}

func (b *PsaProgressionObservationBuilder) WithConfidence(score float64) *PsaProgressionObservationBuilder {
	b.setConfidence(score)
	return b
}

func (b *PsaProgressionObservationBuilder) WithEffectiveDate(effective time.Time) *PsaProgressionObservationBuilder {
	b.setEffectiveDate(effective)
	return b
}

func (b *PsaProgressionObservationBuilder) AddEvidence(reference, display string) *PsaProgressionObservationBuilder {
	b.addEvidence(reference, display)
	return b
}

func (b *PsaProgressionObservationBuilder) AddNote(text string) *PsaProgressionObservationBuilder {
	b.addNote(text)
	return b
}

func (b *PsaProgressionObservationBuilder) AddSupportingFact(fact Fact) *PsaProgressionObservationBuilder {
	b.addSupportingFact(fact)
	return b
}

func (b *PsaProgressionObservationBuilder) AddConflictingFact(fact Fact) *PsaProgressionObservationBuilder {
	b.addConflictingFact(fact)
	return b
}

func (b *PsaProgressionObservationBuilder) isPcwg3Mode() bool {
	return strings.EqualFold(b.criteriaID, pcwg3CriteriaID)
}

// psaChange holds the computed change components. reference is the value
// the change was measured against (nadir in PCWG3 mode, else baseline).
type psaChange struct {
	percent      float64
	absolute     float64
	fromNadir    bool
	hasReference bool
}

// computeChange follows the reference-value policy: the nadir when PCWG3
// criteria are active and both nadir and current are present, otherwise the
// baseline when both baseline and current are present, otherwise no change
// components at all.
func (b *PsaProgressionObservationBuilder) computeChange() psaChange {
	if b.currentPSA == nil {
		return psaChange{}
	}
	var reference *float64
	fromNadir := false
	if b.isPcwg3Mode() && b.nadirPSA != nil {
		reference = b.nadirPSA
		fromNadir = true
	} else if b.baselinePSA != nil {
		reference = b.baselinePSA
	}
	if reference == nil || *reference == 0 {
		return psaChange{}
	}

	current := decimal.NewFromFloat(*b.currentPSA)
	ref := decimal.NewFromFloat(*reference)
	absolute := current.Sub(ref)
	percent := absolute.Div(ref).Mul(decimal.NewFromInt(100))

	return psaChange{
		percent:      percent.Round(2).InexactFloat64(),
		absolute:     absolute.Round(2).InexactFloat64(),
		fromNadir:    fromNadir,
		hasReference: true,
	}
}

func (b *PsaProgressionObservationBuilder) Build() (*fhir_dto.Observation, error) {
	if err := b.validateRequired(); err != nil {
		return nil, err
	}

	observation := b.newObservation(
		constvars.ObservationCategoryLaboratory,
		loincConcept(constvars.LoincCancerDiseaseStatus, "Response to cancer treatment"),
	)
	observation.Code.Text = "PSA progression"

	if b.determination != nil {
		value, err := b.determination.Concept()
		if err != nil {
			return nil, err
		}
		observation.ValueCodeableConcept = &value
	}

	if b.criteriaID != "" {
		observation.Method = &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  b.criteriaSystemBase,
				Code:    b.criteriaID,
				Version: b.criteriaVersion,
				Display: b.criteriaID,
			}},
			Text: b.criteriaID,
		}
	}

	change := b.computeChange()
	thresholdMet := b.thresholdMet
	if thresholdMet == nil && change.hasReference && change.fromNadir {
		met := change.percent >= pcwg3ThresholdPercent
		thresholdMet = &met
	}

	appendComponents(observation, []componentEntry{
		{
			present: b.currentPSA != nil,
			code:    constvars.ComponentCodePsaCurrent,
			display: "Current PSA value",
			apply: func(component *fhir_dto.ObservationComponent) {
				quantityValue(*b.currentPSA, constvars.UcumNanogramsPerMilliliter)(component)
			},
		},
		{
			present: b.nadirPSA != nil,
			code:    constvars.ComponentCodePsaNadir,
			display: "PSA nadir value",
			apply: func(component *fhir_dto.ObservationComponent) {
				quantityValue(*b.nadirPSA, constvars.UcumNanogramsPerMilliliter)(component)
			},
		},
		{
			present: b.baselinePSA != nil,
			code:    constvars.ComponentCodePsaBaseline,
			display: "PSA baseline value",
			apply: func(component *fhir_dto.ObservationComponent) {
				quantityValue(*b.baselinePSA, constvars.UcumNanogramsPerMilliliter)(component)
			},
		},
		{
			present: change.hasReference,
			code:    constvars.ComponentCodePsaPercentChange,
			display: "PSA percentage change",
			apply: func(component *fhir_dto.ObservationComponent) {
				quantityValue(change.percent, constvars.UcumPercent)(component)
			},
		},
		{
			present: change.hasReference,
			code:    constvars.ComponentCodePsaAbsoluteChange,
			display: "PSA absolute change",
			apply: func(component *fhir_dto.ObservationComponent) {
				quantityValue(change.absolute, constvars.UcumNanogramsPerMilliliter)(component)
			},
		},
		{
			present: thresholdMet != nil,
			code:    constvars.ComponentCodePcwg3ThresholdMet,
			display: "PCWG3 progression threshold met",
			apply: func(component *fhir_dto.ObservationComponent) {
				booleanValue(*thresholdMet)(component)
			},
		},
	})

	return observation, nil
}

// BuildCondition derives the implied Condition. It is only legal when the
// determination indicates progressive disease.
func (b *PsaProgressionObservationBuilder) BuildCondition(observation *fhir_dto.Observation) (*fhir_dto.Condition, error) {
	determination := Determination("")
	if b.determination != nil {
		determination = *b.determination
	}
	return b.deriveCondition(observation, determination, "Biochemically progressive prostate cancer")
}
