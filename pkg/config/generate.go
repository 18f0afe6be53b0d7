package config

import (
	"bytes"
	"fmt"

	"github.com/arthur-debert/redate/internal/version"
	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent renders cfg as a TOML file that can be used as a
// user or root config
func GenerateConfigContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# redate %s configuration\n", version.Version)
	buf.WriteString("# Save as ~/.config/redate/config.toml or .redate.toml in a scanned directory.\n\n")

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("failed to encode configuration: %w", err)
	}
	return buf.String(), nil
}
