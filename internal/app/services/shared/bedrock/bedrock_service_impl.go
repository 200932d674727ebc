package bedrock

import (
	"context"
	"strings"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	maxOutputTokens  = 1024
)

type messageRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type streamChunk struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

type bedrockService struct {
	BedrockClient *bedrockruntime.Client
	ModelID       string
	Logger        *zap.Logger
}

func NewBedrockService(bedrockClient *bedrockruntime.Client, modelID string, logger *zap.Logger) contracts.ModelRunner {
	return &bedrockService{
		BedrockClient: bedrockClient,
		ModelID:       modelID,
		Logger:        logger,
	}
}

func (b *bedrockService) requestBody(prompt string) ([]byte, error) {
	body, err := json.Marshal(messageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxOutputTokens,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return body, nil
}

func (b *bedrockService) InvokeModel(ctx context.Context, prompt string) (string, error) {
	body, err := b.requestBody(prompt)
	if err != nil {
		return "", err
	}

	output, err := b.BedrockClient.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.ModelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", exceptions.ErrModelInvocation(err, b.ModelID)
	}

	var response messageResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", exceptions.ErrDecodeResponse(err, "InvokeModel")
	}

	var completion strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			completion.WriteString(block.Text)
		}
	}
	return completion.String(), nil
}

func (b *bedrockService) InvokeModelStreaming(ctx context.Context, prompt string, onChunk func(chunk string)) (string, error) {
	body, err := b.requestBody(prompt)
	if err != nil {
		return "", err
	}

	output, err := b.BedrockClient.InvokeModelWithResponseStream(ctx, &bedrockruntime.InvokeModelWithResponseStreamInput{
		ModelId:     aws.String(b.ModelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", exceptions.ErrModelInvocation(err, b.ModelID)
	}

	stream := output.GetStream()
	defer stream.Close()

	var completion strings.Builder
	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			continue
		}
		var delta streamChunk
		if err := json.Unmarshal(chunk.Value.Bytes, &delta); err != nil {
			b.Logger.Warn("skipping undecodable stream chunk", zap.Error(err))
			continue
		}
		if delta.Type != "content_block_delta" || delta.Delta.Text == "" {
			continue
		}
		completion.WriteString(delta.Delta.Text)
		if onChunk != nil {
			onChunk(delta.Delta.Text)
		}
	}
	if err := stream.Err(); err != nil {
		return completion.String(), exceptions.ErrModelStreamInterrupted(err, b.ModelID)
	}
	return completion.String(), nil
}
