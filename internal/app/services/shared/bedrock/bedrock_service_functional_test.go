package bedrock

import (
	"context"
	"os"
	"strings"
	"testing"
	"thirdopinion-service/internal/app/config"
	awsdrivers "thirdopinion-service/internal/app/drivers/aws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBedrockServiceFunctional(t *testing.T) {
	if os.Getenv("AWS_FUNCTIONAL_TESTS") != "1" {
		t.Skip("set AWS_FUNCTIONAL_TESTS=1 to run against live AWS services")
	}

	driverConfig := config.NewDriverConfig()
	bedrockClient := awsdrivers.NewBedrockRuntimeClient(awsdrivers.NewAWSConfig(driverConfig))
	ctx := context.Background()

	t.Run("Invoke model returns a completion", func(t *testing.T) {
		modelRunner := NewBedrockService(bedrockClient, driverConfig.AWS.BedrockModelID, zap.NewNop())
		completion, err := modelRunner.InvokeModel(ctx, "Reply with the single word OK.")
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(completion))
	})

	t.Run("Streaming collects the chunks it reports", func(t *testing.T) {
		modelRunner := NewBedrockService(bedrockClient, driverConfig.AWS.BedrockModelID, zap.NewNop())

		var streamed strings.Builder
		completion, err := modelRunner.InvokeModelStreaming(ctx, "Count from 1 to 5, digits only.", func(chunk string) {
			streamed.WriteString(chunk)
		})
		require.NoError(t, err)
		assert.NotEmpty(t, completion)
		assert.Equal(t, completion, streamed.String(), "callback chunks should concatenate to the returned completion")
	})

	t.Run("Invalid model id surfaces an invocation error", func(t *testing.T) {
		modelRunner := NewBedrockService(bedrockClient, "anthropic.model-that-does-not-exist", zap.NewNop())
		_, err := modelRunner.InvokeModel(ctx, "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "anthropic.model-that-does-not-exist")
	})
}
