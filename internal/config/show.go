package config

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Marshal renders the configuration as "toml" or "json".
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "toml", "":
		return toml.Marshal(c)
	case "json":
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: toml, json)", format)
	}
}
