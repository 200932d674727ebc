package contracts

import "context"

type Secrets interface {
	GetSecretString(ctx context.Context, secretName string) (string, error)
	// CleanupSecrets schedules deletion of every named secret, fanning the
	// deletes out in parallel.
	CleanupSecrets(ctx context.Context, secretNames []string) error
}
