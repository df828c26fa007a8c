package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	githubinfra "github.com/m-mizutani/ghtrail/pkg/infra/github"
)

const (
	flagGitHubToken     = "github-token"
	flagGitHubBaseURL   = "github-base-url"
	flagGitHubUserAgent = "github-user-agent"
	flagGitHubPerPage   = "github-per-page"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token     string `masq:"secret"`
	BaseURL   string
	UserAgent string
	PerPage   int
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        flagGitHubToken,
			Usage:       "GitHub personal access token (raises the API rate limit)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GHTRAIL_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        flagGitHubBaseURL,
			Usage:       "GitHub API base URL (for GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("GHTRAIL_GITHUB_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        flagGitHubUserAgent,
			Usage:       "User-Agent header sent to GitHub",
			Destination: &c.UserAgent,
			Sources:     cli.EnvVars("GHTRAIL_GITHUB_USER_AGENT"),
		},
		&cli.IntFlag{
			Name:        flagGitHubPerPage,
			Usage:       "Number of items requested per collection (1-100)",
			Value:       100,
			Destination: &c.PerPage,
			Sources:     cli.EnvVars("GHTRAIL_GITHUB_PER_PAGE"),
		},
	}
}

// Merge fills values from the config file for every flag that was not set explicitly
func (c *GitHub) Merge(file *File, isSet func(name string) bool) {
	if file == nil {
		return
	}
	f := file.GitHub

	if f.Token != "" && !isSet(flagGitHubToken) {
		c.Token = f.Token
	}
	if f.BaseURL != "" && !isSet(flagGitHubBaseURL) {
		c.BaseURL = f.BaseURL
	}
	if f.UserAgent != "" && !isSet(flagGitHubUserAgent) {
		c.UserAgent = f.UserAgent
	}
	if f.PerPage != 0 && !isSet(flagGitHubPerPage) {
		c.PerPage = f.PerPage
	}
}

// NewClient builds the GitHub REST client from the configuration
func (c *GitHub) NewClient() (*githubinfra.Client, error) {
	opts := []githubinfra.Option{
		githubinfra.WithPerPage(c.PerPage),
	}
	if c.Token != "" {
		opts = append(opts, githubinfra.WithToken(c.Token))
	}
	if c.BaseURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
	}
	if c.UserAgent != "" {
		opts = append(opts, githubinfra.WithUserAgent(c.UserAgent))
	}

	client, err := githubinfra.NewClient(opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub client")
	}
	return client, nil
}
