package storage

import (
	"bytes"
	"context"
	"io"
	"thirdopinion-service/internal/app/contracts"
	"thirdopinion-service/internal/pkg/exceptions"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// multipartPartSize is the part size handed to the upload manager; 5 MiB is
// the S3 minimum.
const multipartPartSize = 5 * 1024 * 1024

type s3Storage struct {
	S3Client   *s3.Client
	Uploader   *manager.Uploader
	BucketName string
}

func NewS3Storage(s3Client *s3.Client, bucketName string) contracts.Storage {
	uploader := manager.NewUploader(s3Client, func(u *manager.Uploader) {
		u.PartSize = multipartPartSize
	})
	return &s3Storage{
		S3Client:   s3Client,
		Uploader:   uploader,
		BucketName: bucketName,
	}
}

func (s *s3Storage) UploadObject(ctx context.Context, objectKey string, body io.Reader, contentType string) (string, error) {
	buffered, err := io.ReadAll(body)
	if err != nil {
		return "", exceptions.ErrStorageUpload(err, objectKey, s.BucketName)
	}

	_, err = s.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(buffered),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", exceptions.ErrStorageUpload(err, objectKey, s.BucketName)
	}

	return objectKey, nil
}

func (s *s3Storage) UploadLargeObject(ctx context.Context, objectKey string, body io.Reader) (string, error) {
	_, err := s.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
		Body:   body,
	})
	if err != nil {
		return "", exceptions.ErrStorageUpload(err, objectKey, s.BucketName)
	}

	return objectKey, nil
}

func (s *s3Storage) DownloadObject(ctx context.Context, objectKey string) ([]byte, error) {
	output, err := s.S3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, exceptions.ErrStorageDownload(err, objectKey, s.BucketName)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, exceptions.ErrStorageDownload(err, objectKey, s.BucketName)
	}

	return data, nil
}

func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.S3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return exceptions.ErrAWSOperation(err, "S3", "DeleteObject")
	}
	return nil
}
