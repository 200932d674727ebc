package aws

import (
	"context"
	"log"
	appconfig "thirdopinion-service/internal/app/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

func NewAWSConfig(driverConfig *appconfig.DriverConfig) aws.Config {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(driverConfig.AWS.Region),
	)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %s", err.Error())
	}
	log.Println("Successfully loaded AWS configuration")
	return cfg
}
