package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	cmd := Apply()

	require.NotNil(t, cmd)
	assert.Equal(t, "apply", cmd.Use)
	assert.Equal(t, "Append the abort rule to every bucket missing one", cmd.Short)
	assert.NotNil(t, cmd.RunE, "Apply command should have RunE function")
}

func TestApply_ConfigFlag(t *testing.T) {
	cmd := Apply()

	flag := cmd.Flags().Lookup("config")
	require.NotNil(t, flag, "config flag should exist")
	assert.Equal(t, "c", flag.Shorthand)
	assert.Equal(t, "", flag.DefValue)
}

func TestApply_DaysFlag(t *testing.T) {
	cmd := Apply()

	flag := cmd.Flags().Lookup("days")
	require.NotNil(t, flag, "days flag should exist")
	assert.Equal(t, "d", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue, "zero means take the configured value")
}

func TestApply_DryRunFlag(t *testing.T) {
	cmd := Apply()

	flag := cmd.Flags().Lookup("dry-run")
	require.NotNil(t, flag, "dry-run flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestApply_JSONFlag(t *testing.T) {
	cmd := Apply()

	flag := cmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}
