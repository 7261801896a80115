// Package config defines the configuration model for the sweep.
//
// The [Config] struct holds the target rule parameters (day count, rule ID),
// the bucket exclusion list, and the client settings needed to reach S3 or
// an S3-compatible endpoint. It is produced either by loading a YAML file
// or by the interactive init wizard.
package config
