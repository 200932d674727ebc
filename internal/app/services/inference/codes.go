package inference

import (
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
)

// Determination is the closed set of therapy-response determinations an
// inference may carry.
type Determination string

const (
	DeterminationCompleteResponse   Determination = "CR"
	DeterminationPartialResponse    Determination = "PR"
	DeterminationStableDisease      Determination = "SD"
	DeterminationProgressiveDisease Determination = "PD"
	DeterminationBaseline           Determination = "Baseline"
	DeterminationInconclusive       Determination = "Inconclusive"
)

// Concept maps the determination onto its fixed SNOMED CT coding. Values
// outside the closed set are a distinct error, not a fallthrough.
func (d Determination) Concept() (fhir_dto.CodeableConcept, error) {
	var code, display string
	switch d {
	case DeterminationCompleteResponse:
		code, display = constvars.SnomedCompleteResponse, "Complete therapeutic response"
	case DeterminationPartialResponse:
		code, display = constvars.SnomedPartialResponse, "Partial therapeutic response"
	case DeterminationStableDisease:
		code, display = constvars.SnomedStableDisease, "Stable disease"
	case DeterminationProgressiveDisease:
		code, display = constvars.SnomedProgressiveDisease, "Progressive disease"
	case DeterminationBaseline:
		code, display = constvars.SnomedBaselineAssessment, "Baseline assessment"
	case DeterminationInconclusive:
		code, display = constvars.SnomedInconclusiveFinding, "Inconclusive"
	default:
		return fhir_dto.CodeableConcept{}, exceptions.ErrInvalidDetermination(string(d))
	}
	return snomedConcept(code, display), nil
}

// IndicatesProgression reports whether the determination justifies deriving
// a progression Condition.
func (d Determination) IndicatesProgression() bool {
	return d == DeterminationProgressiveDisease
}

// CriteriaType selects which progression standard a radiographic inference
// was evaluated against.
type CriteriaType string

const (
	CriteriaObserved CriteriaType = "Observed"
	CriteriaRecist11 CriteriaType = "RECIST1.1"
	CriteriaPcwg3    CriteriaType = "PCWG3"
)

// methodConcept maps the criteria standard onto its NCI Thesaurus method
// coding. Observed inferences carry no method.
func (c CriteriaType) methodConcept() (*fhir_dto.CodeableConcept, error) {
	switch c {
	case CriteriaObserved:
		return nil, nil
	case CriteriaRecist11:
		return &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{System: constvars.SystemNCIThesaurus, Code: constvars.NciRecist11, Display: "RECIST 1.1"}},
			Text:   "RECIST 1.1",
		}, nil
	case CriteriaPcwg3:
		return &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{System: constvars.SystemNCIThesaurus, Code: constvars.NciPcwg3, Display: "PCWG3"}},
			Text:   "PCWG3",
		}, nil
	default:
		return nil, exceptions.ErrInvalidCriteriaType(string(c))
	}
}

// categoryCode maps the criteria standard onto the observation category:
// image-based standards are imaging, clinician-observed progression is exam.
func (c CriteriaType) categoryCode() string {
	if c == CriteriaObserved {
		return constvars.ObservationCategoryExam
	}
	return constvars.ObservationCategoryImaging
}

// CastrationStatus is the closed set of castration-sensitivity states.
type CastrationStatus string

const (
	CastrationSensitive CastrationStatus = "sensitive"
	CastrationResistant CastrationStatus = "resistant"
)

func (s CastrationStatus) concept() (fhir_dto.CodeableConcept, error) {
	switch s {
	case CastrationSensitive:
		return snomedConcept(constvars.SnomedCastrationSensitive, "Castration-sensitive prostate cancer"), nil
	case CastrationResistant:
		return snomedConcept(constvars.SnomedCastrationResistant, "Castration-resistant prostate cancer"), nil
	default:
		return fhir_dto.CodeableConcept{}, exceptions.ErrInvalidDetermination(string(s))
	}
}

func snomedConcept(code, display string) fhir_dto.CodeableConcept {
	return fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{System: constvars.SystemSNOMED, Code: code, Display: display}},
		Text:   display,
	}
}

func loincConcept(code, display string) fhir_dto.CodeableConcept {
	return fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{System: constvars.SystemLOINC, Code: code, Display: display}},
		Text:   display,
	}
}

func toiComponentConcept(code, display string) fhir_dto.CodeableConcept {
	return fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{System: constvars.SystemTOIComponent, Code: code, Display: display}},
		Text:   display,
	}
}

func observationCategory(category string) fhir_dto.CodeableConcept {
	return fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{{System: constvars.SystemObservationCategory, Code: category, Display: category}},
	}
}
