package constvars

const (
	LoggingInstanceIDKey       = "instance_id"
	LoggingInstanceTypeKey     = "instance_type"
	LoggingAvailabilityZoneKey = "availability_zone"
	LoggingRegionKey           = "region"
	LoggingLambdaNameKey       = "lambda_function_name"
	LoggingLambdaVersionKey    = "lambda_function_version"
	LoggingExecutionEnvKey     = "execution_environment"

	LoggingPatientIDKey     = "patient_id"
	LoggingObservationIDKey = "observation_id"
	LoggingDatastoreIDKey   = "datastore_id"
)

// Execution environments inferred by the AWS context enricher.
const (
	ExecutionEnvLambda = "Lambda"
	ExecutionEnvEC2    = "EC2"
	ExecutionEnvECS    = "ECS"
	ExecutionEnvEKS    = "EKS"
	ExecutionEnvLocal  = "Local"
)

// Environment variables probed by the AWS context enricher.
const (
	EnvLambdaFunctionName    = "AWS_LAMBDA_FUNCTION_NAME"
	EnvLambdaFunctionVersion = "AWS_LAMBDA_FUNCTION_VERSION"
	EnvECSMetadataURI        = "ECS_CONTAINER_METADATA_URI_V4"
	EnvKubernetesServiceHost = "KUBERNETES_SERVICE_HOST"
	EnvAWSRegion             = "AWS_REGION"
	EnvAWSDefaultRegion      = "AWS_DEFAULT_REGION"
)
