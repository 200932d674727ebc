package constvars

// Standard terminology systems referenced by the builders.
const (
	SystemLOINC               = "http://loinc.org"
	SystemSNOMED              = "http://snomed.info/sct"
	SystemICD10CM             = "http://hl7.org/fhir/sid/icd-10-cm"
	SystemNCIThesaurus        = "http://ncithesaurus-stage.nci.nih.gov"
	SystemUCUM                = "http://unitsofmeasure.org"
	SystemObservationCategory = "http://terminology.hl7.org/CodeSystem/observation-category"
	SystemConditionClinical   = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	SystemConditionVerStatus  = "http://terminology.hl7.org/CodeSystem/condition-ver-status"
)

// Proprietary code systems for inference components.
const (
	SystemTOIComponent       = "http://thirdopinion.ai/fhir/CodeSystem/inference-component"
	SystemTOICriteriaDefault = "http://thirdopinion.ai/fhir/CodeSystem/criteria"
)

// Proprietary extension URLs.
const (
	ExtensionTreatmentStartDateURL = "https://thirdopinion.io/fhir/StructureDefinition/treatment-start-date"
	ExtensionSupportingFactURL     = "https://thirdopinion.io/fhir/StructureDefinition/supporting-fact"
	ExtensionConflictingFactURL    = "https://thirdopinion.io/fhir/StructureDefinition/conflicting-fact"
	ExtensionSourceReferenceURL    = "https://thirdopinion.io/fhir/StructureDefinition/source-reference"
)

// Component codes under SystemTOIComponent.
const (
	ComponentCodeConfidence        = "confidence-score"
	ComponentCodePsaCurrent        = "psa-current-value"
	ComponentCodePsaNadir          = "psa-nadir-value"
	ComponentCodePsaBaseline       = "psa-baseline-value"
	ComponentCodePsaPercentChange  = "psa-percentage-change"
	ComponentCodePsaAbsoluteChange = "psa-absolute-change"
	ComponentCodePcwg3ThresholdMet = "pcwg3-threshold-met"
	ComponentCodeNewLesions        = "new-lesions-present"
	ComponentCodeTargetResponse    = "target-lesion-response"
	ComponentCodeNonTargetResponse = "non-target-lesion-response"
	ComponentCodeLesionDescription = "lesion-description"
	ComponentCodeTreatmentStart    = "treatment-start-date"
)

// LOINC codes for the observation code tables.
const (
	LoincCancerDiseaseStatus = "88040-1" // Response to cancer treatment
	LoincPSASerum            = "2857-1"  // Prostate specific Ag [Mass/volume] in Serum or Plasma
)

// SNOMED CT codes for observation values and clinical concepts.
const (
	SnomedActive              = "55561003"  // Active
	SnomedInactive            = "73425007"  // Inactive
	SnomedADTTherapy          = "707266006" // Androgen deprivation therapy
	SnomedProstateCancer      = "399068003" // Malignant tumor of prostate
	SnomedCastrationSensitive = "1197209002"
	SnomedCastrationResistant = "445848006"
	SnomedDiseaseProgression  = "246450006" // Status of tumor response
)

// SNOMED CT codes for progression determinations.
const (
	SnomedCompleteResponse    = "268910001"
	SnomedPartialResponse     = "385633008"
	SnomedStableDisease       = "359746009"
	SnomedProgressiveDisease  = "277022003"
	SnomedBaselineAssessment  = "261938004"
	SnomedInconclusiveFinding = "419984006"
)

// ICD-10-CM codes used on derived conditions.
const (
	Icd10ProstateCancer = "C61"
)

// NCI Thesaurus codes.
const (
	NciRecist11 = "C111544" // RECIST 1.1
	NciPcwg3    = "C146237" // PCWG3
)

// UCUM units.
const (
	UcumNanogramsPerMilliliter = "ng/mL"
	UcumPercent                = "%"
	UcumScore                  = "1"
)
