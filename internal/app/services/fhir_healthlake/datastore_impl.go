package fhir_healthlake

import (
	"context"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/exceptions"
	"thirdopinion-service/internal/pkg/utils"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/healthlake"
	"github.com/aws/aws-sdk-go-v2/service/healthlake/types"
	"go.uber.org/zap"
)

const datastorePollInterval = 10 * time.Second

type datastoreClient struct {
	HealthLakeClient *healthlake.Client
	DatastoreID      string
	Log              *zap.Logger
}

func NewDatastoreClient(healthLakeClient *healthlake.Client, datastoreID string, logger *zap.Logger) contracts.DatastoreClient {
	return &datastoreClient{
		HealthLakeClient: healthLakeClient,
		DatastoreID:      datastoreID,
		Log:              logger,
	}
}

func (c *datastoreClient) DatastoreStatus(ctx context.Context) (string, error) {
	output, err := c.HealthLakeClient.DescribeFHIRDatastore(ctx, &healthlake.DescribeFHIRDatastoreInput{
		DatastoreId: aws.String(c.DatastoreID),
	})
	if err != nil {
		c.Log.Error("datastoreClient.DatastoreStatus error describing datastore",
			zap.String(constvars.LoggingDatastoreIDKey, c.DatastoreID),
			zap.Error(err),
		)
		return "", exceptions.ErrDatastoreDescribe(err, c.DatastoreID)
	}
	return string(output.DatastoreProperties.DatastoreStatus), nil
}

// WaitForDatastoreActive polls the datastore at a fixed interval until it
// reports ACTIVE or the timeout elapses.
func (c *datastoreClient) WaitForDatastoreActive(ctx context.Context, timeout time.Duration) error {
	return utils.WaitForCondition(ctx, "HealthLake datastore "+c.DatastoreID, datastorePollInterval, timeout, func(probeCtx context.Context) (bool, error) {
		status, err := c.DatastoreStatus(probeCtx)
		if err != nil {
			return false, err
		}
		c.Log.Debug("datastoreClient.WaitForDatastoreActive polled",
			zap.String(constvars.LoggingDatastoreIDKey, c.DatastoreID),
			zap.String("status", status),
		)
		return status == string(types.DatastoreStatusActive), nil
	})
}
