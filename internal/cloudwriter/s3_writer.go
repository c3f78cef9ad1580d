package cloudwriter

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 API the writer uses.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Writer struct {
	client        ObjectPutter
	bucket        string
	objectPath    string
	contentType   string
	uploadTimeout time.Duration
	buffer        bytes.Buffer
	closed        bool
}

type S3WriterFactory struct {
	client        ObjectPutter
	uploadTimeout time.Duration
}

func NewS3WriterFactory(region string) (*S3WriterFactory, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewS3WriterFactoryWithClient(s3.NewFromConfig(cfg)), nil
}

func NewS3WriterFactoryWithClient(client ObjectPutter) *S3WriterFactory {
	return &S3WriterFactory{client: client, uploadTimeout: 2 * time.Minute}
}

func (f *S3WriterFactory) NewWriter(bucket, objectPath string) (CloudWriter, error) {
	if bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}
	return &S3Writer{
		client:        f.client,
		bucket:        bucket,
		objectPath:    objectPath,
		contentType:   contentTypeFor(objectPath),
		uploadTimeout: f.uploadTimeout,
	}, nil
}

func (w *S3Writer) Write(data []byte) (int, error) {
	if w.closed {
		return 0, fmt.Errorf("write to closed object %s", w.objectPath)
	}
	return w.buffer.Write(data)
}

// Close uploads the buffered object. Closing twice is a no-op.
func (w *S3Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), w.uploadTimeout)
	defer cancel()

	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(w.objectPath),
		Body:        bytes.NewReader(w.buffer.Bytes()),
		ContentType: aws.String(w.contentType),
	})
	if err != nil {
		return fmt.Errorf("unable to upload file to S3: %w", err)
	}
	log.Printf("Uploaded s3://%s/%s (%d bytes)", w.bucket, w.objectPath, w.buffer.Len())
	return nil
}

func contentTypeFor(objectPath string) string {
	switch path.Ext(objectPath) {
	case ".parquet":
		return "application/vnd.apache.parquet"
	case ".json":
		return "application/x-ndjson"
	}
	return "application/octet-stream"
}
