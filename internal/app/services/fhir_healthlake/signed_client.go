package fhir_healthlake

import (
	"context"
	"net/http"
	"strings"
	"thirdopinion-service/internal/pkg/exceptions"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

const (
	healthLakeServiceName = "healthlake"

	// SHA-256 of an empty body; every data-plane read we issue is a GET.
	emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

// signedClient issues SigV4-signed requests against the HealthLake FHIR
// data plane, which does not ship with a generated SDK client.
type signedClient struct {
	HTTPClient  *http.Client
	Signer      *v4.Signer
	Credentials aws.CredentialsProvider
	Region      string
	Endpoint    string
}

func newSignedClient(awsConfig aws.Config, endpoint string) *signedClient {
	return &signedClient{
		HTTPClient:  &http.Client{Timeout: 30 * time.Second},
		Signer:      v4.NewSigner(),
		Credentials: awsConfig.Credentials,
		Region:      awsConfig.Region,
		Endpoint:    strings.TrimSuffix(endpoint, "/"),
	}
}

func (c *signedClient) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint+path, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	credentials, err := c.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, exceptions.ErrSignHTTPRequest(err)
	}
	err = c.Signer.SignHTTP(ctx, credentials, req, emptyPayloadHash, healthLakeServiceName, c.Region, time.Now())
	if err != nil {
		return nil, exceptions.ErrSignHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}
