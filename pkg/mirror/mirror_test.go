package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/gleaner/pkg/errors"
	mock_mirror "github.com/glorpus-work/gleaner/pkg/mirror/mocks"
)

func TestParseRemotePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RemotePath
		wantErr  bool
	}{
		{
			name:     "bucket and prefix",
			input:    "s3://my-bucket/datasets/sst",
			expected: RemotePath{Bucket: "my-bucket", KeyPrefix: "datasets/sst"},
		},
		{
			name:     "bucket only",
			input:    "s3://my-bucket",
			expected: RemotePath{Bucket: "my-bucket"},
		},
		{
			name:     "trailing slash trimmed",
			input:    "s3://my-bucket/datasets/",
			expected: RemotePath{Bucket: "my-bucket", KeyPrefix: "datasets"},
		},
		{name: "wrong scheme", input: "gs://my-bucket/x", wantErr: true},
		{name: "no scheme", input: "my-bucket/x", wantErr: true},
		{name: "empty bucket", input: "s3://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rp, err := ParseRemotePath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrInvalidRemotePath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rp)
		})
	}
}

func TestRemotePathKey(t *testing.T) {
	rp := RemotePath{Bucket: "my-bucket", KeyPrefix: "datasets/sst"}
	assert.Equal(t, "datasets/sst/2024/01/sst_20240101.nc",
		rp.Key(filepath.Join("2024", "01", "sst_20240101.nc")))

	noPrefix := RemotePath{Bucket: "my-bucket"}
	assert.Equal(t, "2024/01/sst_20240101.nc",
		noPrefix.Key(filepath.Join("2024", "01", "sst_20240101.nc")))
}

func TestMirror(t *testing.T) {
	writeGranule := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "sst_20240101.nc")
		require.NoError(t, os.WriteFile(path, []byte("CDF\x01data"), 0o644))
		return path
	}

	t.Run("uploads under the key prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		putter := mock_mirror.NewMockObjectPutter(ctrl)
		putter.EXPECT().PutObject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
				assert.Equal(t, "my-bucket", *params.Bucket)
				assert.Equal(t, "datasets/sst/2024/01/sst_20240101.nc", *params.Key)
				assert.NotNil(t, params.Body)
				return &s3.PutObjectOutput{}, nil
			},
		).Times(1)

		adapter := NewAdapter(putter, RemotePath{Bucket: "my-bucket", KeyPrefix: "datasets/sst"})
		key, err := adapter.Mirror(context.Background(), writeGranule(t),
			filepath.Join("2024", "01", "sst_20240101.nc"))
		require.NoError(t, err)
		assert.Equal(t, "datasets/sst/2024/01/sst_20240101.nc", key)
	})

	t.Run("transport failure wraps ErrMirrorUpload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		putter := mock_mirror.NewMockObjectPutter(ctrl)
		putter.EXPECT().PutObject(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection reset")).Times(1)

		adapter := NewAdapter(putter, RemotePath{Bucket: "my-bucket"})
		_, err := adapter.Mirror(context.Background(), writeGranule(t), "sst_20240101.nc")
		assert.ErrorIs(t, err, errors.ErrMirrorUpload)
	})

	t.Run("missing local file wraps ErrMirrorUpload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		putter := mock_mirror.NewMockObjectPutter(ctrl)

		adapter := NewAdapter(putter, RemotePath{Bucket: "my-bucket"})
		_, err := adapter.Mirror(context.Background(), filepath.Join(t.TempDir(), "missing.nc"), "missing.nc")
		assert.ErrorIs(t, err, errors.ErrMirrorUpload)
	})
}
