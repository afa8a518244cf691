package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the identifying values for the Graph resource and the
// identity provider. It is loaded from a TOML file and passed explicitly to
// the components that need it - there is no ambient global configuration.
type Config struct {
	Resource     string `toml:"resource"`
	Tenant       string `toml:"tenant"`
	Authority    string `toml:"authority"`
	ClientID     string `toml:"client-id"`
	ClientSecret string `toml:"client-secret"`
	APIVersion   string `toml:"api-version"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
}

// DefaultConfig returns the out-of-the-box configuration. A port of 0 means
// 'probe for a free port' when the authorisation flow starts.
func DefaultConfig() Config {
	return Config{
		Resource:   "https://graph.microsoft.com",
		Tenant:     "common",
		Authority:  "https://login.microsoftonline.com",
		APIVersion: "v1.0",
		Host:       "localhost",
		Port:       0,
	}
}

// LoadConfig reads the configuration file, overlaying the defaults. A
// missing file is not an error - the defaults apply.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}

		return conf, err
	}

	if err := toml.Unmarshal(b, &conf); err != nil {
		return conf, fmt.Errorf("invalid configuration file %s (%w)", path, err)
	}

	return conf, nil
}
