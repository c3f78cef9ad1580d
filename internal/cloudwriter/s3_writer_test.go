package cloudwriter_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chrisdamba/foodbrowse/internal/cloudwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upload struct {
	bucket, key, contentType string
	body                     []byte
}

type fakeS3 struct {
	uploads []upload
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, upload{
		bucket:      aws.ToString(params.Bucket),
		key:         aws.ToString(params.Key),
		contentType: aws.ToString(params.ContentType),
		body:        body,
	})
	return &s3.PutObjectOutput{}, nil
}

func TestS3WriterUploadsOnClose(t *testing.T) {
	client := &fakeS3{}
	factory := cloudwriter.NewS3WriterFactoryWithClient(client)

	w, err := factory.NewWriter("snapshots", "restaurant_snapshots/data.parquet")
	require.NoError(t, err)

	_, err = w.Write([]byte("PAR1"))
	require.NoError(t, err)
	_, err = w.Write([]byte("rest"))
	require.NoError(t, err)
	assert.Empty(t, client.uploads)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	require.Len(t, client.uploads, 1)
	up := client.uploads[0]
	assert.Equal(t, "snapshots", up.bucket)
	assert.Equal(t, "restaurant_snapshots/data.parquet", up.key)
	assert.Equal(t, "application/vnd.apache.parquet", up.contentType)
	assert.Equal(t, "PAR1rest", string(up.body))

	_, err = w.Write([]byte("late"))
	assert.Error(t, err)
}

func TestS3WriterContentTypes(t *testing.T) {
	client := &fakeS3{}
	factory := cloudwriter.NewS3WriterFactoryWithClient(client)
	for _, key := range []string{"a/data.json", "a/blob"} {
		w, err := factory.NewWriter("b", key)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}
	require.Len(t, client.uploads, 2)
	assert.Equal(t, "application/x-ndjson", client.uploads[0].contentType)
	assert.Equal(t, "application/octet-stream", client.uploads[1].contentType)
}

func TestS3WriterErrors(t *testing.T) {
	factory := cloudwriter.NewS3WriterFactoryWithClient(&fakeS3{err: errors.New("access denied")})

	_, err := factory.NewWriter("", "key")
	assert.Error(t, err)

	w, err := factory.NewWriter("b", "key")
	require.NoError(t, err)
	assert.ErrorContains(t, w.Close(), "access denied")
}
