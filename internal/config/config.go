package config

import (
	"fmt"
	"slices"

	"github.com/bucketops/mpusweep/internal/lifecycle"
)

// DefaultRegion is used for the account-wide S3 client and for buckets
// whose GetBucketLocation returns an empty LocationConstraint.
const DefaultRegion = "us-east-1"

// Config is the canonical tool configuration.
type Config struct {
	// Days is the DaysAfterInitiation value of the abort rule.
	Days int32 `yaml:"days"`

	// RuleID overrides the generated rule identifier. When empty, the ID is
	// derived from Days (delete-incomplete-mpu-<days>days).
	RuleID string `yaml:"rule_id,omitempty"`

	// Region is the region of the default S3 client.
	Region string `yaml:"region,omitempty"`

	// ExcludeBuckets lists bucket names to leave untouched.
	ExcludeBuckets []string `yaml:"exclude_buckets,omitempty"`

	// Endpoint points the S3 client at an S3-compatible service
	// (MinIO, LocalStack). Empty means AWS.
	Endpoint string `yaml:"endpoint,omitempty"`

	// PathStyle forces path-style addressing. Most S3-compatible services
	// need this; AWS does not.
	PathStyle bool `yaml:"path_style,omitempty"`

	// AccessKey and SecretKey are static credentials. When empty, the
	// default SDK credential chain is used.
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		Days:   lifecycle.DefaultDays,
		Region: DefaultRegion,
	}
}

// EffectiveRuleID returns the rule identifier to apply: the explicit
// override when set, otherwise the day-derived default.
func (c *Config) EffectiveRuleID() string {
	if c.RuleID != "" {
		return c.RuleID
	}
	return lifecycle.RuleID(c.Days)
}

// IsExcluded reports whether the bucket is on the exclusion list.
func (c *Config) IsExcluded(bucket string) bool {
	return slices.Contains(c.ExcludeBuckets, bucket)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Days < 1 || c.Days > 365 {
		return fmt.Errorf("days must be between 1 and 365, got %d", c.Days)
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	return nil
}
