package logger

import (
	"context"
	"os"
	"thirdopinion-service/internal/pkg/constvars"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

const imdsProbeTimeout = 1 * time.Second

// AWSContext holds the execution-context properties attached to log events.
// Empty properties are never emitted.
type AWSContext struct {
	InstanceID            string
	InstanceType          string
	AvailabilityZone      string
	Region                string
	LambdaFunctionName    string
	LambdaFunctionVersion string
	ExecutionEnvironment  string
}

// AWSContextEnricher probes EC2 instance metadata and well-known environment
// variables once at construction and tags every log event with whichever
// properties are non-empty. It plugs into zap via Fields and into logrus as
// a Hook.
type AWSContextEnricher struct {
	awsContext AWSContext
}

type instanceMetadataClient interface {
	GetInstanceIdentityDocument(ctx context.Context, params *imds.GetInstanceIdentityDocumentInput, optFns ...func(*imds.Options)) (*imds.GetInstanceIdentityDocumentOutput, error)
}

func NewAWSContextEnricher(ctx context.Context) *AWSContextEnricher {
	return newAWSContextEnricher(ctx, imds.New(imds.Options{}))
}

func newAWSContextEnricher(ctx context.Context, metadataClient instanceMetadataClient) *AWSContextEnricher {
	awsContext := AWSContext{
		LambdaFunctionName:    os.Getenv(constvars.EnvLambdaFunctionName),
		LambdaFunctionVersion: os.Getenv(constvars.EnvLambdaFunctionVersion),
		Region:                os.Getenv(constvars.EnvAWSRegion),
	}
	if awsContext.Region == "" {
		awsContext.Region = os.Getenv(constvars.EnvAWSDefaultRegion)
	}

	// IMDS being unreachable is expected off EC2; the instance properties
	// just stay empty.
	probeCtx, cancel := context.WithTimeout(ctx, imdsProbeTimeout)
	defer cancel()
	document, err := metadataClient.GetInstanceIdentityDocument(probeCtx, &imds.GetInstanceIdentityDocumentInput{})
	if err == nil {
		awsContext.InstanceID = document.InstanceID
		awsContext.InstanceType = document.InstanceType
		awsContext.AvailabilityZone = document.AvailabilityZone
		if awsContext.Region == "" {
			awsContext.Region = document.Region
		}
	}

	awsContext.ExecutionEnvironment = inferExecutionEnvironment(awsContext)
	return &AWSContextEnricher{awsContext: awsContext}
}

func inferExecutionEnvironment(awsContext AWSContext) string {
	switch {
	case awsContext.LambdaFunctionName != "":
		return constvars.ExecutionEnvLambda
	case awsContext.InstanceID != "":
		return constvars.ExecutionEnvEC2
	case os.Getenv(constvars.EnvECSMetadataURI) != "":
		return constvars.ExecutionEnvECS
	case os.Getenv(constvars.EnvKubernetesServiceHost) != "":
		return constvars.ExecutionEnvEKS
	default:
		return constvars.ExecutionEnvLocal
	}
}

func (e *AWSContextEnricher) Context() AWSContext {
	return e.awsContext
}

// Fields returns the non-empty context properties as zap fields, suitable
// for logger.With(enricher.Fields()...).
func (e *AWSContextEnricher) Fields() []zap.Field {
	fields := make([]zap.Field, 0, len(e.properties()))
	for key, value := range e.properties() {
		fields = append(fields, zap.String(key, value))
	}
	return fields
}

// Levels implements logrus.Hook.
func (e *AWSContextEnricher) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (e *AWSContextEnricher) Fire(entry *logrus.Entry) error {
	for key, value := range e.properties() {
		entry.Data[key] = value
	}
	return nil
}

func (e *AWSContextEnricher) properties() map[string]string {
	properties := map[string]string{
		constvars.LoggingExecutionEnvKey: e.awsContext.ExecutionEnvironment,
	}
	optional := map[string]string{
		constvars.LoggingInstanceIDKey:       e.awsContext.InstanceID,
		constvars.LoggingInstanceTypeKey:     e.awsContext.InstanceType,
		constvars.LoggingAvailabilityZoneKey: e.awsContext.AvailabilityZone,
		constvars.LoggingRegionKey:           e.awsContext.Region,
		constvars.LoggingLambdaNameKey:       e.awsContext.LambdaFunctionName,
		constvars.LoggingLambdaVersionKey:    e.awsContext.LambdaFunctionVersion,
	}
	for key, value := range optional {
		if value != "" {
			properties[key] = value
		}
	}
	return properties
}
