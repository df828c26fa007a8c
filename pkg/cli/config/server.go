package config

import "github.com/urfave/cli/v3"

const (
	flagAddr    = "addr"
	flagMetrics = "metrics"
)

// Server holds server configuration
type Server struct {
	Addr    string
	Metrics bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagAddr,
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("GHTRAIL_ADDR"),
		},
		&cli.BoolFlag{
			Name:        flagMetrics,
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Destination: &c.Metrics,
			Sources:     cli.EnvVars("GHTRAIL_METRICS"),
		},
	}
}

// Merge takes the listen address from the config file unless it was set explicitly
func (c *Server) Merge(file *File, isSet func(name string) bool) {
	if file == nil {
		return
	}
	if file.Server.Addr != "" && !isSet(flagAddr) {
		c.Addr = file.Server.Addr
	}
}
