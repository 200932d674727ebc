package auth

import (
	"context"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

type cognitoAuth struct {
	CognitoClient *cognitoidentityprovider.Client
	ClientID      string
}

func NewCognitoAuth(cognitoClient *cognitoidentityprovider.Client, clientID string) contracts.Auth {
	return &cognitoAuth{
		CognitoClient: cognitoClient,
		ClientID:      clientID,
	}
}

func (c *cognitoAuth) SignUp(ctx context.Context, username, password, email string) (string, error) {
	output, err := c.CognitoClient.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(c.ClientID),
		Username: aws.String(username),
		Password: aws.String(password),
		UserAttributes: []types.AttributeType{
			{
				Name:  aws.String("email"),
				Value: aws.String(email),
			},
		},
	})
	if err != nil {
		return "", exceptions.ErrAuthOperation(err, "SignUp")
	}
	return aws.ToString(output.UserSub), nil
}

func (c *cognitoAuth) Authenticate(ctx context.Context, username, password string) (*contracts.AuthTokens, error) {
	output, err := c.CognitoClient.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.ClientID),
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, exceptions.ErrAuthOperation(err, "InitiateAuth")
	}
	if output.AuthenticationResult == nil {
		return nil, exceptions.ErrAuthOperation(nil, "InitiateAuth")
	}
	return &contracts.AuthTokens{
		AccessToken:  aws.ToString(output.AuthenticationResult.AccessToken),
		IDToken:      aws.ToString(output.AuthenticationResult.IdToken),
		RefreshToken: aws.ToString(output.AuthenticationResult.RefreshToken),
		ExpiresIn:    output.AuthenticationResult.ExpiresIn,
	}, nil
}

func (c *cognitoAuth) GetUsername(ctx context.Context, accessToken string) (string, error) {
	output, err := c.CognitoClient.GetUser(ctx, &cognitoidentityprovider.GetUserInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return "", exceptions.ErrAuthOperation(err, "GetUser")
	}
	return aws.ToString(output.Username), nil
}
