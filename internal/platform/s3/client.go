package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// fallbackRegion is what an empty LocationConstraint means: the bucket
// lives in us-east-1.
const fallbackRegion = "us-east-1"

// Options configures client construction.
type Options struct {
	// Region the client signs requests for.
	Region string

	// Endpoint overrides the AWS endpoint for S3-compatible services
	// (MinIO, LocalStack). Empty means AWS.
	Endpoint string

	// PathStyle forces path-style addressing. Most S3-compatible services
	// need this.
	PathStyle bool

	// AccessKey and SecretKey are static credentials. When empty, the
	// default SDK credential chain is used.
	AccessKey string
	SecretKey string
}

// Client wraps the S3 client for bucket lifecycle management.
type Client struct {
	s3     *s3.Client
	region string
}

// NewClient creates a new S3 client for the given options.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})

	return &Client{s3: client, region: opts.Region}, nil
}

// Region returns the region the client signs requests for.
func (c *Client) Region() string {
	return c.region
}

// ListBuckets returns the names of all buckets in the account.
func (c *Client) ListBuckets(ctx context.Context) ([]string, error) {
	var names []string

	paginator := s3.NewListBucketsPaginator(c.s3, &s3.ListBucketsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list buckets: %w", err)
		}
		for _, bucket := range page.Buckets {
			if bucket.Name != nil {
				names = append(names, *bucket.Name)
			}
		}
	}

	return names, nil
}

// BucketRegion returns the region a bucket lives in. An empty
// LocationConstraint from the API means us-east-1.
func (c *Client) BucketRegion(ctx context.Context, bucketName string) (string, error) {
	result, err := c.s3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get location for bucket %s: %w", bucketName, err)
	}

	region := string(result.LocationConstraint)
	if region == "" {
		region = fallbackRegion
	}
	return region, nil
}

// LifecycleRules returns the bucket's lifecycle rules.
// A bucket without a lifecycle configuration yields nil, not an error.
func (c *Client) LifecycleRules(ctx context.Context, bucketName string) ([]types.LifecycleRule, error) {
	result, err := c.s3.GetBucketLifecycleConfiguration(ctx, &s3.GetBucketLifecycleConfigurationInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		if isNoLifecycleConfiguration(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lifecycle configuration for bucket %s: %w", bucketName, err)
	}

	return result.Rules, nil
}

// PutLifecycleRules replaces the bucket's lifecycle configuration with the
// given rules.
func (c *Client) PutLifecycleRules(ctx context.Context, bucketName string, rules []types.LifecycleRule) error {
	_, err := c.s3.PutBucketLifecycleConfiguration(ctx, &s3.PutBucketLifecycleConfigurationInput{
		Bucket: aws.String(bucketName),
		LifecycleConfiguration: &types.BucketLifecycleConfiguration{
			Rules: rules,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to put lifecycle configuration for bucket %s: %w", bucketName, err)
	}
	return nil
}

// isNoLifecycleConfiguration checks if the error means the bucket has no
// lifecycle configuration. The SDK has no typed error for this, so the
// API error code is checked directly.
func isNoLifecycleConfiguration(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchLifecycleConfiguration"
	}

	return false
}
