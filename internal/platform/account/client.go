// Package account provides a client for the AWS Account API, used to look
// up region opt-in status.
package account

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/account"
	"github.com/aws/aws-sdk-go-v2/service/account/types"
)

// Client wraps the Account API client.
type Client struct {
	account *account.Client
}

// NewClient creates a new Account API client using the default SDK
// credential chain.
func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Client{account: account.NewFromConfig(cfg)}, nil
}

// IsOptInRegion reports whether the region is opt-in. Buckets in opt-in
// regions can only be reached through regional S3 endpoints; regions
// enabled by default work through any endpoint.
func (c *Client) IsOptInRegion(ctx context.Context, region string) (bool, error) {
	result, err := c.account.GetRegionOptStatus(ctx, &account.GetRegionOptStatusInput{
		RegionName: aws.String(region),
	})
	if err != nil {
		return false, fmt.Errorf("failed to get opt status for region %s: %w", region, err)
	}

	return result.RegionOptStatus != types.RegionOptStatusEnabledByDefault, nil
}
