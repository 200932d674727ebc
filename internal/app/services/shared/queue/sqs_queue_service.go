package queue

import (
	"context"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"
)

const receiveWaitTimeSeconds = 5

type sqsQueue struct {
	SQSClient *sqs.Client
	QueueURL  string
	log       *zap.Logger
}

func NewSQSQueue(sqsClient *sqs.Client, queueURL string, log *zap.Logger) contracts.Queue {
	return &sqsQueue{
		SQSClient: sqsClient,
		QueueURL:  queueURL,
		log:       log,
	}
}

func (q *sqsQueue) SendMessage(ctx context.Context, body string) (string, error) {
	output, err := q.SQSClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.QueueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return "", exceptions.ErrQueueSend(err, q.QueueURL)
	}

	q.log.Debug("sent queue message", zap.String("message_id", aws.ToString(output.MessageId)))
	return aws.ToString(output.MessageId), nil
}

func (q *sqsQueue) SendFifoMessage(ctx context.Context, body, groupID, dedupID string) (string, error) {
	output, err := q.SQSClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:               aws.String(q.QueueURL),
		MessageBody:            aws.String(body),
		MessageGroupId:         aws.String(groupID),
		MessageDeduplicationId: aws.String(dedupID),
	})
	if err != nil {
		return "", exceptions.ErrQueueSend(err, q.QueueURL)
	}

	q.log.Debug("sent FIFO queue message",
		zap.String("message_id", aws.ToString(output.MessageId)),
		zap.String("group_id", groupID),
	)
	return aws.ToString(output.MessageId), nil
}

func (q *sqsQueue) ReceiveMessages(ctx context.Context, maxMessages int32) ([]contracts.QueueMessage, error) {
	output, err := q.SQSClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.QueueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     receiveWaitTimeSeconds,
	})
	if err != nil {
		return nil, exceptions.ErrQueueReceive(err, q.QueueURL)
	}

	messages := make([]contracts.QueueMessage, 0, len(output.Messages))
	for _, message := range output.Messages {
		messages = append(messages, contracts.QueueMessage{
			MessageID:     aws.ToString(message.MessageId),
			Body:          aws.ToString(message.Body),
			ReceiptHandle: aws.ToString(message.ReceiptHandle),
		})
	}
	return messages, nil
}

func (q *sqsQueue) DeleteMessage(ctx context.Context, receiptHandle string) error {
	_, err := q.SQSClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.QueueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return exceptions.ErrAWSOperation(err, "SQS", "DeleteMessage")
	}
	return nil
}
