package fhir_healthlake

import (
	"context"
	"fmt"
	"io"
	"sync"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/fhir_dto"

	"github.com/aws/aws-sdk-go-v2/aws"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	patientFhirClientInstance contracts.PatientFhirClient
	oncePatientFhirClient     sync.Once
)

type patientFhirClient struct {
	Client *signedClient
	Log    *zap.Logger
}

func NewPatientFhirClient(awsConfig aws.Config, endpoint string, logger *zap.Logger) contracts.PatientFhirClient {
	oncePatientFhirClient.Do(func() {
		client := &patientFhirClient{
			Client: newSignedClient(awsConfig, endpoint),
			Log:    logger,
		}
		patientFhirClientInstance = client
	})
	return patientFhirClientInstance
}

func (c *patientFhirClient) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	c.Log.Info("patientFhirClient.FindPatientByID called",
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	resp, err := c.Client.get(ctx, fmt.Sprintf("/%s/%s", constvars.ResourcePatient, patientID))
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error sending request",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.FindPatientByID error reading response body",
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
			return nil, exceptions.ErrFetchFHIRResource(err, constvars.ResourcePatient)
		}

		var outcome fhir_dto.OperationOutcome
		err = json.Unmarshal(bodyBytes, &outcome)
		if err != nil {
			c.Log.Error("patientFhirClient.FindPatientByID error unmarshaling outcome",
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
			return nil, exceptions.ErrFetchFHIRResource(err, constvars.ResourcePatient)
		}

		if len(outcome.Issue) > 0 {
			fhirErrorIssue := fmt.Errorf(outcome.Issue[0].Diagnostics)
			c.Log.Error("patientFhirClient.FindPatientByID FHIR error",
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.Error(fhirErrorIssue),
			)
			return nil, exceptions.ErrFetchFHIRResource(fhirErrorIssue, constvars.ResourcePatient)
		}
		return nil, exceptions.ErrUnexpectedFHIRResponseCode(resp.StatusCode)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(&patientFhir)
	if err != nil {
		c.Log.Error("patientFhirClient.FindPatientByID error decoding response",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}

func (c *patientFhirClient) FindPatientsByIDs(ctx context.Context, patientIDs []string) ([]*fhir_dto.Patient, error) {
	c.Log.Info("patientFhirClient.FindPatientsByIDs called",
		zap.Int("patient_count", len(patientIDs)),
	)

	patients := make([]*fhir_dto.Patient, len(patientIDs))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, patientID := range patientIDs {
		i, patientID := i, patientID
		group.Go(func() error {
			patient, err := c.FindPatientByID(groupCtx, patientID)
			if err != nil {
				return err
			}
			patients[i] = patient
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return patients, nil
}
