package s3

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/tanq16/grabfile/internal/utils"
)

const DefaultRegion = "us-east-1"

type Config struct {
	Region string
	// Endpoint overrides the AWS endpoint and switches to path-style
	// addressing, for S3-compatible stores.
	Endpoint string
}

// S3Source reads public objects. Requests are unsigned.
type S3Source struct {
	config Config
	client *s3.Client
}

func NewSource(cfg Config) *S3Source {
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	return &S3Source{config: cfg}
}

func (s *S3Source) Open(ctx context.Context, rawURL string) (*utils.Stream, error) {
	bucket, key, err := parseS3URL(rawURL)
	if err != nil {
		return nil, err
	}
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}
	log := utils.GetLogger("s3")
	log.Debug().Str("op", "s3/source").Msgf("Getting object s3://%s/%s", bucket, key)
	obj, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("error getting S3 object: %w", err)
	}
	length := int64(-1)
	if obj.ContentLength != nil {
		length = *obj.ContentLength
	}
	return &utils.Stream{Body: obj.Body, Length: length}, nil
}

func (s *S3Source) getClient(ctx context.Context) (*s3.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.config.Region),
		config.WithCredentialsProvider(aws.AnonymousCredentials{}),
	)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	s.client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.config.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.config.Endpoint)
			o.UsePathStyle = true
		}
	})
	return s.client, nil
}

func parseS3URL(rawURL string) (string, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 URL: %w", err)
	}
	if parsed.Scheme != "s3" {
		return "", "", fmt.Errorf("invalid S3 URL scheme: %s", parsed.Scheme)
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if parsed.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URL, expected s3://bucket/key: %s", rawURL)
	}
	return parsed.Host, key, nil
}
