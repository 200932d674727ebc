package contracts

import "context"

type QueueMessage struct {
	MessageID     string
	Body          string
	ReceiptHandle string
}

type Queue interface {
	SendMessage(ctx context.Context, body string) (string, error)
	// SendFifoMessage targets a FIFO queue; groupID orders messages and
	// dedupID suppresses redeliveries within the dedup window.
	SendFifoMessage(ctx context.Context, body, groupID, dedupID string) (string, error)
	ReceiveMessages(ctx context.Context, maxMessages int32) ([]QueueMessage, error)
	DeleteMessage(ctx context.Context, receiptHandle string) error
}
