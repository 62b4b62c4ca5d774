// Package storage uploads user avatars to an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"quizbuilder/backend/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

var allowedImageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// objectPutter is the part of *s3.Client the uploader needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// AvatarStore puts avatar images in a bucket and returns their public URL.
type AvatarStore struct {
	client    objectPutter
	bucket    string
	publicURL string
}

// NewAvatarStore returns (nil, nil) when the bucket is not fully configured;
// avatar uploads are then disabled.
func NewAvatarStore(ctx context.Context, cfg *config.Config) (*AvatarStore, error) {
	if cfg.AvatarBucket == "" || cfg.AvatarAccessKeyID == "" || cfg.AvatarSecretAccessKey == "" || cfg.AvatarPublicURL == "" {
		log.Println("WARN: avatar storage not configured (AVATAR_BUCKET, AVATAR_ACCESS_KEY_ID, AVATAR_SECRET_ACCESS_KEY, AVATAR_PUBLIC_URL); uploads disabled")
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AvatarAccessKeyID, cfg.AvatarSecretAccessKey, "")),
		awsconfig.WithRegion(cfg.AvatarRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("load object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AvatarEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AvatarEndpoint)
			o.UsePathStyle = true
		}
	})

	return newAvatarStore(client, cfg.AvatarBucket, cfg.AvatarPublicURL), nil
}

func newAvatarStore(client objectPutter, bucket, publicURL string) *AvatarStore {
	return &AvatarStore{client: client, bucket: bucket, publicURL: strings.TrimSuffix(publicURL, "/")}
}

// Upload stores the image under avatars/<userID>/<random>.<ext> and returns its public URL.
func (s *AvatarStore) Upload(ctx context.Context, userID uint, filename string, body io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}

	key := path.Join("avatars", fmt.Sprint(userID), uuid.NewString()+ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload avatar %s: %w", key, err)
	}

	return s.objectURL(key)
}

func (s *AvatarStore) objectURL(key string) (string, error) {
	base, err := url.Parse(s.publicURL)
	if err != nil {
		return "", fmt.Errorf("parse public url: %w", err)
	}
	base.Path = path.Join(base.Path, key)
	return base.String(), nil
}
