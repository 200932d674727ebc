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
)

var (
	observationFhirClientInstance contracts.ObservationFhirClient
	onceObservationFhirClient     sync.Once
)

type observationFhirClient struct {
	Client *signedClient
	Log    *zap.Logger
}

func NewObservationFhirClient(awsConfig aws.Config, endpoint string, logger *zap.Logger) contracts.ObservationFhirClient {
	onceObservationFhirClient.Do(func() {
		client := &observationFhirClient{
			Client: newSignedClient(awsConfig, endpoint),
			Log:    logger,
		}
		observationFhirClientInstance = client
	})
	return observationFhirClientInstance
}

func (c *observationFhirClient) FindObservationByID(ctx context.Context, observationID string) (*fhir_dto.Observation, error) {
	c.Log.Info("observationFhirClient.FindObservationByID called",
		zap.String(constvars.LoggingObservationIDKey, observationID),
	)

	resp, err := c.Client.get(ctx, fmt.Sprintf("/%s/%s", constvars.ResourceObservation, observationID))
	if err != nil {
		c.Log.Error("observationFhirClient.FindObservationByID error sending request",
			zap.String(constvars.LoggingObservationIDKey, observationID),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("observationFhirClient.FindObservationByID error reading response body",
				zap.String(constvars.LoggingObservationIDKey, observationID),
				zap.Error(err),
			)
			return nil, exceptions.ErrFetchFHIRResource(err, constvars.ResourceObservation)
		}

		var outcome fhir_dto.OperationOutcome
		err = json.Unmarshal(bodyBytes, &outcome)
		if err != nil {
			c.Log.Error("observationFhirClient.FindObservationByID error unmarshaling outcome",
				zap.String(constvars.LoggingObservationIDKey, observationID),
				zap.Error(err),
			)
			return nil, exceptions.ErrFetchFHIRResource(err, constvars.ResourceObservation)
		}

		if len(outcome.Issue) > 0 {
			fhirErrorIssue := fmt.Errorf(outcome.Issue[0].Diagnostics)
			c.Log.Error("observationFhirClient.FindObservationByID FHIR error",
				zap.String(constvars.LoggingObservationIDKey, observationID),
				zap.Error(fhirErrorIssue),
			)
			return nil, exceptions.ErrFetchFHIRResource(fhirErrorIssue, constvars.ResourceObservation)
		}
		return nil, exceptions.ErrUnexpectedFHIRResponseCode(resp.StatusCode)
	}

	observationFhir := new(fhir_dto.Observation)
	err = json.NewDecoder(resp.Body).Decode(&observationFhir)
	if err != nil {
		c.Log.Error("observationFhirClient.FindObservationByID error decoding response",
			zap.String(constvars.LoggingObservationIDKey, observationID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceObservation)
	}

	c.Log.Info("observationFhirClient.FindObservationByID succeeded",
		zap.String(constvars.LoggingObservationIDKey, observationFhir.ID),
	)
	return observationFhir, nil
}
