package config

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Logger         *zap.Logger
	AWSConfig      aws.Config
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	err := b.Logger.Sync()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
