package storage

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"thirdopinion-service/internal/app/config"
	awsdrivers "thirdopinion-service/internal/app/drivers/aws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3StorageFunctional(t *testing.T) {
	if os.Getenv("AWS_FUNCTIONAL_TESTS") != "1" {
		t.Skip("set AWS_FUNCTIONAL_TESTS=1 to run against live AWS services")
	}

	driverConfig := config.NewDriverConfig()
	storageService := NewS3Storage(awsdrivers.NewS3Client(awsdrivers.NewAWSConfig(driverConfig)), driverConfig.AWS.S3BucketName)
	ctx := context.Background()

	t.Run("Upload, download, and delete a small object", func(t *testing.T) {
		objectKey := "functional-tests/" + uuid.NewString() + ".json"
		content := []byte(`{"resourceType":"Observation","status":"preliminary"}`)

		key, err := storageService.UploadObject(ctx, objectKey, bytes.NewReader(content), "application/fhir+json")
		require.NoError(t, err)
		assert.Equal(t, objectKey, key)

		t.Cleanup(func() { storageService.DeleteObject(ctx, objectKey) })

		downloaded, err := storageService.DownloadObject(ctx, objectKey)
		require.NoError(t, err)
		assert.Equal(t, content, downloaded)

		require.NoError(t, storageService.DeleteObject(ctx, objectKey))
	})

	t.Run("Large object goes through the multipart uploader", func(t *testing.T) {
		objectKey := "functional-tests/" + uuid.NewString() + ".bin"
		// Three parts at the 5 MiB minimum part size.
		payload := strings.Repeat("clinical-inference-payload-", 600000)

		key, err := storageService.UploadLargeObject(ctx, objectKey, strings.NewReader(payload))
		require.NoError(t, err)
		assert.Equal(t, objectKey, key)

		t.Cleanup(func() { storageService.DeleteObject(ctx, objectKey) })

		downloaded, err := storageService.DownloadObject(ctx, objectKey)
		require.NoError(t, err)
		assert.Len(t, downloaded, len(payload))
	})

	t.Run("Downloading a missing object fails", func(t *testing.T) {
		_, err := storageService.DownloadObject(ctx, "functional-tests/does-not-exist-"+uuid.NewString())
		require.Error(t, err)
	})
}
