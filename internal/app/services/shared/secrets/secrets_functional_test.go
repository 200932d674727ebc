package secrets

import (
	"context"
	"os"
	"testing"
	"thirdopinion-service/internal/app/config"
	awsdrivers "thirdopinion-service/internal/app/drivers/aws"
	"thirdopinion-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretsFunctional(t *testing.T) {
	if os.Getenv("AWS_FUNCTIONAL_TESTS") != "1" {
		t.Skip("set AWS_FUNCTIONAL_TESTS=1 to run against live AWS services")
	}

	driverConfig := config.NewDriverConfig()
	secretsClient := awsdrivers.NewSecretsManagerClient(awsdrivers.NewAWSConfig(driverConfig))
	secretsService := NewSecretsService(secretsClient)
	ctx := context.Background()

	createSecret := func(t *testing.T, value string) string {
		t.Helper()
		secretName := "functional-tests/" + uuid.NewString()
		_, err := secretsClient.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
			Name:         aws.String(secretName),
			SecretString: aws.String(value),
		})
		require.NoError(t, err)
		return secretName
	}

	t.Run("Round-trip a secret string", func(t *testing.T) {
		secretName := createSecret(t, `{"api_key":"functional-test-value"}`)
		t.Cleanup(func() { secretsService.CleanupSecrets(ctx, []string{secretName}) })

		value, err := secretsService.GetSecretString(ctx, secretName)
		require.NoError(t, err)
		assert.Equal(t, `{"api_key":"functional-test-value"}`, value)
	})

	t.Run("CleanupSecrets deletes a batch in parallel", func(t *testing.T) {
		secretNames := []string{
			createSecret(t, "one"),
			createSecret(t, "two"),
			createSecret(t, "three"),
		}

		require.NoError(t, secretsService.CleanupSecrets(ctx, secretNames))

		for _, secretName := range secretNames {
			_, err := secretsService.GetSecretString(ctx, secretName)
			assert.Error(t, err, "secret %s should be gone", secretName)
		}
	})

	t.Run("Nonexistent secret surfaces a not-found error", func(t *testing.T) {
		_, err := secretsService.GetSecretString(ctx, "functional-tests/does-not-exist-"+uuid.NewString())
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
