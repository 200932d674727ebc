package inference

import (
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"thirdopinion-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
)

// deriveCondition builds the Condition a positive progression inference
// implies. The same required fields are re-validated and the observation's
// identifier becomes the evidence back-reference.
func (b *clinicalObservationBuilder) deriveCondition(observation *fhir_dto.Observation, determination Determination, conditionText string) (*fhir_dto.Condition, error) {
	if err := b.validateRequired(); err != nil {
		return nil, err
	}
	if !determination.IndicatesProgression() {
		return nil, exceptions.ErrConditionNotDerivable()
	}

	condition := &fhir_dto.Condition{
		ResourceType: constvars.ResourceCondition,
		ID:           uuid.NewString(),
		ClinicalStatus: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.SystemConditionClinical,
				Code:    constvars.ConditionClinicalStatusActive,
				Display: "Active",
			}},
		},
		VerificationStatus: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{
				System:  constvars.SystemConditionVerStatus,
				Code:    constvars.ConditionVerificationProvisional,
				Display: "Provisional",
			}},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{System: constvars.SystemSNOMED, Code: constvars.SnomedProstateCancer, Display: "Malignant tumor of prostate"},
				{System: constvars.SystemICD10CM, Code: constvars.Icd10ProstateCancer, Display: "Malignant neoplasm of prostate"},
			},
			Text: conditionText,
		},
		Subject:       observation.Subject,
		OnsetDateTime: observation.EffectiveDateTime,
		RecordedDate:  utils.FormatFHIRDateTime(time.Now()),
		Evidence: []fhir_dto.ConditionEvidence{{
			Code: []fhir_dto.CodeableConcept{
				snomedConcept(constvars.SnomedDiseaseProgression, "Status of tumor response"),
			},
			Detail: []fhir_dto.Reference{{
				Reference: utils.EnsureReferencePrefix(constvars.ResourceObservation, observation.ID),
				Type:      constvars.ResourceObservation,
				Display:   "AI inference observation",
			}},
		}},
	}
	condition.Identifier = []fhir_dto.Identifier{{
		System: inferenceIdentifierSystem,
		Value:  condition.ID,
	}}

	return condition, nil
}
