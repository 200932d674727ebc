package fhir_healthlake

import (
	"context"
	"os"
	"strings"
	"testing"
	"thirdopinion-service/internal/app/config"
	awsdrivers "thirdopinion-service/internal/app/drivers/aws"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthLakeFunctional(t *testing.T) {
	if os.Getenv("AWS_FUNCTIONAL_TESTS") != "1" {
		t.Skip("set AWS_FUNCTIONAL_TESTS=1 to run against live AWS services")
	}

	driverConfig := config.NewDriverConfig()
	if driverConfig.AWS.HealthLakeDatastoreID == "" {
		t.Skip("AWS_HEALTHLAKE_DATASTORE_ID not configured")
	}
	awsConfig := awsdrivers.NewAWSConfig(driverConfig)
	ctx := context.Background()

	t.Run("Datastore reports a status and becomes active", func(t *testing.T) {
		datastore := NewDatastoreClient(awsdrivers.NewHealthLakeClient(awsConfig), driverConfig.AWS.HealthLakeDatastoreID, zap.NewNop())

		status, err := datastore.DatastoreStatus(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, status)

		require.NoError(t, datastore.WaitForDatastoreActive(ctx, 5*time.Minute))
	})

	t.Run("Data plane reads patients in parallel", func(t *testing.T) {
		if driverConfig.AWS.HealthLakeEndpoint == "" {
			t.Skip("AWS_HEALTHLAKE_ENDPOINT not configured")
		}
		patientIDsEnv := os.Getenv("AWS_HEALTHLAKE_PATIENT_IDS")
		if patientIDsEnv == "" {
			t.Skip("AWS_HEALTHLAKE_PATIENT_IDS not configured")
		}
		patientIDs := strings.Split(patientIDsEnv, ",")

		patientClient := NewPatientFhirClient(awsConfig, driverConfig.AWS.HealthLakeEndpoint, zap.NewNop())

		patients, err := patientClient.FindPatientsByIDs(ctx, patientIDs)
		require.NoError(t, err)
		require.Len(t, patients, len(patientIDs))
		for i, patient := range patients {
			assert.Equal(t, patientIDs[i], patient.ID, "results keep the request order")
		}
	})

	t.Run("Missing patient surfaces a FHIR error", func(t *testing.T) {
		if driverConfig.AWS.HealthLakeEndpoint == "" {
			t.Skip("AWS_HEALTHLAKE_ENDPOINT not configured")
		}
		patientClient := NewPatientFhirClient(awsConfig, driverConfig.AWS.HealthLakeEndpoint, zap.NewNop())
		_, err := patientClient.FindPatientByID(ctx, "patient-that-does-not-exist")
		require.Error(t, err)
	})
}
