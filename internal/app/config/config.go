package config

import (
	"thirdopinion-service/internal/pkg/constvars"
	"thirdopinion-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		AWS: AWS{
			Region:                utils.GetEnvString("AWS_REGION", "us-east-1"),
			DynamoDBTableName:     utils.GetEnvString("AWS_DYNAMODB_TABLE_NAME", "inference-functional-tests"),
			S3BucketName:          utils.GetEnvString("AWS_S3_BUCKET_NAME", "inference-functional-tests"),
			SQSQueueURL:           utils.GetEnvString("AWS_SQS_QUEUE_URL", ""),
			SQSFifoQueueURL:       utils.GetEnvString("AWS_SQS_FIFO_QUEUE_URL", ""),
			CognitoUserPoolID:     utils.GetEnvString("AWS_COGNITO_USER_POOL_ID", ""),
			CognitoClientID:       utils.GetEnvString("AWS_COGNITO_CLIENT_ID", ""),
			BedrockModelID:        utils.GetEnvString("AWS_BEDROCK_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"),
			HealthLakeDatastoreID: utils.GetEnvString("AWS_HEALTHLAKE_DATASTORE_ID", ""),
			HealthLakeEndpoint:    utils.GetEnvString("AWS_HEALTHLAKE_ENDPOINT", ""),
			SecretName:            utils.GetEnvString("AWS_SECRET_NAME", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "UTC"),
		},
		AIInference: AIInference{
			CriteriaSystemBase: utils.GetEnvString("AI_INFERENCE_CRITERIA_SYSTEM_BASE", constvars.SystemTOICriteriaDefault),
			DefaultDeviceID:    utils.GetEnvString("AI_INFERENCE_DEFAULT_DEVICE_ID", ""),
			ObservationStatus:  utils.GetEnvString("AI_INFERENCE_OBSERVATION_STATUS", constvars.ObservationStatusPreliminary),
		},
	}
}
