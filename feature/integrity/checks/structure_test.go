package checks

import (
	"context"
	"testing"

	"gear-auditor/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gear").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "gear")
		assert.ErrorIs(t, err, ErrBucketMissing)
		assert.Contains(t, err.Error(), "gear")
	})

	t.Run("Bucket Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gear").Return(false, assert.AnError)

		_, err := CheckStructure(context.Background(), mockClient, "gear")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gear").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "gear", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := CheckStructure(context.Background(), mockClient, "gear")
		assert.NoError(t, err)
		assert.Equal(t, []string{"backups", "reports"}, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "gear").Return(true, nil)

		for _, folder := range RequiredFolders {
			ch := make(chan minio.ObjectInfo, 1)
			ch <- minio.ObjectInfo{Key: folder + "/"}
			close(ch)
			prefix := folder + "/"
			mockClient.On("ListObjects", mock.Anything, "gear", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == prefix
			})).Return((<-chan minio.ObjectInfo)(ch))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "gear")
		assert.NoError(t, err)
		assert.Len(t, missing, 0)
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()
	mockClient := new(mocks.Client)

	mockClient.On("PutObject", mock.Anything, "gear", "backups/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "gear", logger, []string{"backups"})
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestFixStructure_Error(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "gear", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

	err := FixStructure(context.Background(), mockClient, "gear", zap.NewNop(), []string{"backups", "reports"})
	assert.ErrorIs(t, err, assert.AnError)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestCreateBucket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("MakeBucket", mock.Anything, "gear", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		err := CreateBucket(context.Background(), mockClient, "gear", "us-east-1", zap.NewNop())
		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("MakeBucket", mock.Anything, "gear", mock.Anything).Return(assert.AnError)

		err := CreateBucket(context.Background(), mockClient, "gear", "", zap.NewNop())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
