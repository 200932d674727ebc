package secrets

import (
	"context"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"golang.org/x/sync/errgroup"
)

type secretsService struct {
	SecretsClient *secretsmanager.Client
}

func NewSecretsService(secretsClient *secretsmanager.Client) contracts.Secrets {
	return &secretsService{
		SecretsClient: secretsClient,
	}
}

func (s *secretsService) GetSecretString(ctx context.Context, secretName string) (string, error) {
	output, err := s.SecretsClient.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return "", exceptions.ErrSecretNotFound(err, secretName)
	}
	return aws.ToString(output.SecretString), nil
}

// CleanupSecrets fans the deletes out and waits for all of them; the first
// failure wins.
func (s *secretsService) CleanupSecrets(ctx context.Context, secretNames []string) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, secretName := range secretNames {
		secretName := secretName
		group.Go(func() error {
			_, err := s.SecretsClient.DeleteSecret(groupCtx, &secretsmanager.DeleteSecretInput{
				SecretId:                   aws.String(secretName),
				ForceDeleteWithoutRecovery: aws.Bool(true),
			})
			if err != nil {
				return exceptions.ErrAWSOperation(err, "SecretsManager", "DeleteSecret")
			}
			return nil
		})
	}
	return group.Wait()
}
