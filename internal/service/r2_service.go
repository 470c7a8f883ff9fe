package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/fluxora/configs"
)

var ErrStorageNotConfigured = errors.New("object storage is not configured")

// ObjectStorage stores media and exports and hands back their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	URL(key string) string
}

type R2Service struct {
	config cfg.R2
	client *s3.Client
}

// NewR2Service returns nil when the bucket is not configured; callers treat a nil
// ObjectStorage as ErrStorageNotConfigured.
func NewR2Service(ctx context.Context, r2 cfg.R2) (*R2Service, error) {
	if !r2.Enabled() {
		return nil, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2.AccessKey, r2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2.AccountID))
	})
	return &R2Service{config: r2, client: client}, nil
}

func (r *R2Service) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}

	if _, err := r.client.PutObject(ctx, input); err != nil {
		slog.Info(err.Error())
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	return r.URL(key), nil
}

func (r *R2Service) URL(key string) string {
	return PublicURL(r.config, key)
}

// PublicURL joins the bucket's public base with key. Without a configured base the
// default r2.dev bucket host is used.
func PublicURL(r2 cfg.R2, key string) string {
	base := r2.PublicURL
	if base == "" {
		base = fmt.Sprintf("https://%s.r2.dev", r2.BucketName)
	}
	return strings.TrimRight(base, "/") + "/" + key
}
