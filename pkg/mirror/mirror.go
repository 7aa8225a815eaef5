//go:generate mockgen -destination=./mocks/mirror.go . ObjectPutter

// Package mirror copies committed granules to an S3 object store. The
// remote base path names the bucket and key prefix; each granule's key is
// the prefix joined with its local relative path, so the remote tree
// mirrors the local one.
package mirror

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/glorpus-work/gleaner/pkg/errors"
)

// remoteScheme is the only supported object-store scheme.
const remoteScheme = "s3://"

// RemotePath is a parsed remote base path.
type RemotePath struct {
	Bucket    string
	KeyPrefix string
}

// ParseRemotePath splits "s3://bucket/prefix..." into the bucket and key
// prefix. The prefix may be empty.
func ParseRemotePath(raw string) (RemotePath, error) {
	if !strings.HasPrefix(raw, remoteScheme) {
		return RemotePath{}, errors.Wrapf(errors.ErrInvalidRemotePath, "%q must start with %s", raw, remoteScheme)
	}
	parts := strings.SplitN(strings.TrimPrefix(raw, remoteScheme), "/", 2)
	if parts[0] == "" {
		return RemotePath{}, errors.Wrapf(errors.ErrInvalidRemotePath, "%q names no bucket", raw)
	}
	rp := RemotePath{Bucket: parts[0]}
	if len(parts) == 2 {
		rp.KeyPrefix = strings.Trim(parts[1], "/")
	}
	return rp, nil
}

// Key returns the object key for a granule's local relative path.
func (rp RemotePath) Key(relPath string) string {
	return path.Join(rp.KeyPrefix, filepath.ToSlash(relPath))
}

// ObjectPutter is the narrow S3 surface the adapter depends on.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ClientConfig holds S3 client construction options. Zero values fall back
// to the default AWS credential chain and region resolution.
type ClientConfig struct {
	// Profile selects a shared-config credentials profile.
	Profile string

	// Region is the AWS region (e.g. "us-east-1").
	Region string

	// Explicit credentials; used instead of the default chain when set.
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	// Endpoint overrides the default S3 endpoint (for S3-compatible
	// services).
	Endpoint string

	// UsePathStyle forces path-style addressing (for MinIO, LocalStack).
	UsePathStyle bool
}

// NewClient creates an S3 client from the given configuration.
func NewClient(ctx context.Context, cfg ClientConfig) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				cfg.SessionToken,
			),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	s3Opts := []func(*s3.Options){}
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	return s3.NewFromConfig(awsCfg, s3Opts...), nil
}

// Adapter uploads committed granules under a remote base path.
type Adapter struct {
	client ObjectPutter
	remote RemotePath
}

// NewAdapter creates an adapter over an existing client.
func NewAdapter(client ObjectPutter, remote RemotePath) *Adapter {
	return &Adapter{client: client, remote: remote}
}

// Mirror uploads the committed local file under its relative path and
// returns the object key. Failures wrap ErrMirrorUpload; the local commit
// is never rolled back.
func (a *Adapter) Mirror(ctx context.Context, localAbsPath, relPath string) (string, error) {
	key := a.remote.Key(relPath)

	f, err := os.Open(localAbsPath)
	if err != nil {
		return "", errors.Wrapf(errors.ErrMirrorUpload, "cannot open %s: %v", localAbsPath, err)
	}
	defer func() { _ = f.Close() }()

	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.remote.Bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return "", errors.Wrapf(errors.ErrMirrorUpload, "s3://%s/%s: %v", a.remote.Bucket, key, err)
	}
	return key, nil
}
