package config

type (
	InternalConfig struct {
		App         App
		AIInference AIInference
	}

	DriverConfig struct {
		Logger Logger
		AWS    AWS
	}

	App struct {
		Env      string
		Version  string
		Timezone string
	}

	// AIInference configures how builders stamp inference provenance onto
	// the resources they assemble.
	AIInference struct {
		CriteriaSystemBase string
		DefaultDeviceID    string
		ObservationStatus  string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	AWS struct {
		Region                string
		DynamoDBTableName     string
		S3BucketName          string
		SQSQueueURL           string
		SQSFifoQueueURL       string
		CognitoUserPoolID     string
		CognitoClientID       string
		BedrockModelID        string
		HealthLakeDatastoreID string
		HealthLakeEndpoint    string
		SecretName            string
	}
)
