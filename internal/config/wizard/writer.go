package wizard

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bucketops/mpusweep/internal/config"
)

// WriteConfig writes the config to a YAML file with a descriptive header.
func WriteConfig(cfg *config.Config, outputPath string) error {
	yamlBytes, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(generateHeader(outputPath))
	sb.WriteString("\n")
	sb.Write(yamlBytes)

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// generateHeader creates the YAML file header comment.
func generateHeader(outputPath string) string {
	return fmt.Sprintf(`# mpusweep configuration
# Generated by: mpusweep init
# Generated at: %s
#
# Credentials come from the default AWS credential chain unless
# access_key/secret_key are set below.
#
# Usage:
#   mpusweep apply -c %s
`, time.Now().Format(time.RFC3339), outputPath)
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
