// Package s3 provides a client for the AWS S3 API (and S3-compatible
// services) scoped to bucket lifecycle management.
//
// It handles bucket enumeration, bucket region lookup, and reading and
// writing bucket lifecycle configurations.
package s3
