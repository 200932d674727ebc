package contracts

import "context"

type AuthTokens struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
	ExpiresIn    int32
}

type Auth interface {
	SignUp(ctx context.Context, username, password, email string) (string, error)
	Authenticate(ctx context.Context, username, password string) (*AuthTokens, error)
	GetUsername(ctx context.Context, accessToken string) (string, error)
}
