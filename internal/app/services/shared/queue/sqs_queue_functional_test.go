package queue

import (
	"context"
	"fmt"
	"os"
	"testing"
	"thirdopinion-service/internal/app/config"
	awsdrivers "thirdopinion-service/internal/app/drivers/aws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSQSQueueFunctional(t *testing.T) {
	if os.Getenv("AWS_FUNCTIONAL_TESTS") != "1" {
		t.Skip("set AWS_FUNCTIONAL_TESTS=1 to run against live AWS services")
	}

	driverConfig := config.NewDriverConfig()
	sqsClient := awsdrivers.NewSQSClient(awsdrivers.NewAWSConfig(driverConfig))
	ctx := context.Background()

	t.Run("Send, receive, and delete a message", func(t *testing.T) {
		if driverConfig.AWS.SQSQueueURL == "" {
			t.Skip("AWS_SQS_QUEUE_URL not configured")
		}
		queueService := NewSQSQueue(sqsClient, driverConfig.AWS.SQSQueueURL, zap.NewNop())

		body := "inference-ready " + uuid.NewString()
		messageID, err := queueService.SendMessage(ctx, body)
		require.NoError(t, err)
		assert.NotEmpty(t, messageID)

		var received bool
		for attempt := 0; attempt < 6 && !received; attempt++ {
			messages, err := queueService.ReceiveMessages(ctx, 10)
			require.NoError(t, err)
			for _, message := range messages {
				if message.Body == body {
					received = true
					require.NoError(t, queueService.DeleteMessage(ctx, message.ReceiptHandle))
					break
				}
			}
		}
		assert.True(t, received, "sent message should be received")
	})

	t.Run("FIFO messages in one group keep their order", func(t *testing.T) {
		if driverConfig.AWS.SQSFifoQueueURL == "" {
			t.Skip("AWS_SQS_FIFO_QUEUE_URL not configured")
		}
		queueService := NewSQSQueue(sqsClient, driverConfig.AWS.SQSFifoQueueURL, zap.NewNop())
		groupID := uuid.NewString()

		sent := make([]string, 0, 3)
		for i := 0; i < 3; i++ {
			body := fmt.Sprintf("ordered-message-%d-%s", i, groupID)
			sent = append(sent, body)
			_, err := queueService.SendFifoMessage(ctx, body, groupID, uuid.NewString())
			require.NoError(t, err)
		}

		var received []string
		for attempt := 0; attempt < 10 && len(received) < len(sent); attempt++ {
			messages, err := queueService.ReceiveMessages(ctx, 10)
			require.NoError(t, err)
			for _, message := range messages {
				received = append(received, message.Body)
				require.NoError(t, queueService.DeleteMessage(ctx, message.ReceiptHandle))
			}
		}
		assert.Equal(t, sent, received, "FIFO group should preserve send order")
	})

	t.Run("Sending to a nonexistent queue fails", func(t *testing.T) {
		queueService := NewSQSQueue(sqsClient, "https://sqs.us-east-1.amazonaws.com/000000000000/does-not-exist", zap.NewNop())
		_, err := queueService.SendMessage(ctx, "orphan")
		require.Error(t, err)
	})
}
