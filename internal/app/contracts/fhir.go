package contracts

import (
	"context"
	"thirdopinion-service/internal/pkg/fhir_dto"
	"time"
)

type PatientFhirClient interface {
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
	// FindPatientsByIDs retrieves the patients in parallel, failing fast on
	// the first error.
	FindPatientsByIDs(ctx context.Context, patientIDs []string) ([]*fhir_dto.Patient, error)
}

type ObservationFhirClient interface {
	FindObservationByID(ctx context.Context, observationID string) (*fhir_dto.Observation, error)
}

type DatastoreClient interface {
	DatastoreStatus(ctx context.Context) (string, error)
	WaitForDatastoreActive(ctx context.Context, timeout time.Duration) error
}
