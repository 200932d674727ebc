package constvars

type ResourceType string

const (
	ResourcePatient             = "Patient"
	ResourceDevice              = "Device"
	ResourceObservation         = "Observation"
	ResourceCondition           = "Condition"
	ResourceDocumentReference   = "DocumentReference"
	ResourceMedicationRequest   = "MedicationRequest"
	ResourceMedicationStatement = "MedicationStatement"
	ResourceImagingStudy        = "ImagingStudy"
	ResourceDiagnosticReport    = "DiagnosticReport"
)

const (
	ObservationStatusRegistered  = "registered"
	ObservationStatusPreliminary = "preliminary"
	ObservationStatusFinal       = "final"
	ObservationStatusAmended     = "amended"
	ObservationStatusCancelled   = "cancelled"
)

const (
	ObservationCategoryImaging    = "imaging"
	ObservationCategoryLaboratory = "laboratory"
	ObservationCategoryExam       = "exam"
	ObservationCategoryTherapy    = "therapy"
)

const (
	ConditionClinicalStatusActive    = "active"
	ConditionClinicalStatusInactive  = "inactive"
	ConditionVerificationProvisional = "provisional"
	ConditionVerificationConfirmed   = "confirmed"
)

// FhirDateTimeLayout is the FHIR dateTime wire format at instant precision.
const (
	FhirDateTimeLayout = "2006-01-02T15:04:05-07:00"
	FhirDateLayout     = "2006-01-02"
)

const MIMEApplicationFHIRJSON = "application/fhir+json"
