package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/ghtrail/pkg/domain/types"
)

// File is the layout of the optional TOML configuration file
//
//	[github]
//	token = "..."
//	base_url = "https://ghe.example.com/api/v3/"
//	user_agent = "ghtrail"
//	per_page = 50
//
//	[server]
//	addr = "0.0.0.0:8080"
type File struct {
	GitHub struct {
		Token     string `toml:"token" masq:"secret"`
		BaseURL   string `toml:"base_url"`
		UserAgent string `toml:"user_agent"`
		PerPage   int    `toml:"per_page"`
	} `toml:"github"`

	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
}

// ConfigFile holds the path of the configuration file
type ConfigFile struct {
	Path string
}

// Flags returns CLI flags for the configuration file
func (c *ConfigFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &c.Path,
			Sources:     cli.EnvVars("GHTRAIL_CONFIG"),
		},
	}
}

// Load reads the configuration file. No path means an empty configuration.
func (c *ConfigFile) Load() (*File, error) {
	if c.Path == "" {
		return &File{}, nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file",
			goerr.V("path", c.Path),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	return ParseFile(data)
}

// ParseFile decodes TOML configuration. Unknown keys are rejected.
func ParseFile(data []byte) (*File, error) {
	var file File
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.T(types.ErrTagInvalidArgument))
	}
	return &file, nil
}
