package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/ghtrail/pkg/cli/config"
	"github.com/m-mizutani/ghtrail/pkg/domain/types"
)

const sampleConfig = `
[github]
token = "ghp_fromfile"
base_url = "https://ghe.example.com/api/v3/"
user_agent = "ghtrail-file"
per_page = 50

[server]
addr = "0.0.0.0:9090"
`

func TestParseFile(t *testing.T) {
	file, err := config.ParseFile([]byte(sampleConfig))
	gt.NoError(t, err)
	gt.Equal(t, file.GitHub.Token, "ghp_fromfile")
	gt.Equal(t, file.GitHub.BaseURL, "https://ghe.example.com/api/v3/")
	gt.Equal(t, file.GitHub.UserAgent, "ghtrail-file")
	gt.Equal(t, file.GitHub.PerPage, 50)
	gt.Equal(t, file.Server.Addr, "0.0.0.0:9090")
}

func TestParseFile_Invalid(t *testing.T) {
	_, err := config.ParseFile([]byte("[github]\nunknown_key = 1\n"))
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.ErrTagInvalidArgument)).Equal(true)

	_, err = config.ParseFile([]byte("not toml ["))
	gt.Error(t, err)
}

func TestConfigFile_Load(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		file, err := (&config.ConfigFile{}).Load()
		gt.NoError(t, err)
		gt.Equal(t, file.GitHub.Token, "")
	})

	t.Run("from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ghtrail.toml")
		gt.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0600))

		file, err := (&config.ConfigFile{Path: path}).Load()
		gt.NoError(t, err)
		gt.Equal(t, file.Server.Addr, "0.0.0.0:9090")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&config.ConfigFile{Path: filepath.Join(t.TempDir(), "nope.toml")}).Load()
		gt.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	file, err := config.ParseFile([]byte(sampleConfig))
	gt.NoError(t, err)

	t.Run("file fills unset values", func(t *testing.T) {
		gh := config.GitHub{PerPage: 100}
		gh.Merge(file, func(string) bool { return false })
		gt.Equal(t, gh.Token, "ghp_fromfile")
		gt.Equal(t, gh.PerPage, 50)

		srv := config.Server{Addr: "localhost:8080"}
		srv.Merge(file, func(string) bool { return false })
		gt.Equal(t, srv.Addr, "0.0.0.0:9090")
	})

	t.Run("explicit flags win", func(t *testing.T) {
		gh := config.GitHub{Token: "ghp_fromflag", PerPage: 10}
		gh.Merge(file, func(name string) bool {
			return name == "github-token" || name == "github-per-page"
		})
		gt.Equal(t, gh.Token, "ghp_fromflag")
		gt.Equal(t, gh.PerPage, 10)
		gt.Equal(t, gh.UserAgent, "ghtrail-file")

		srv := config.Server{Addr: "127.0.0.1:1234"}
		srv.Merge(file, func(name string) bool { return name == "addr" })
		gt.Equal(t, srv.Addr, "127.0.0.1:1234")
	})

	t.Run("nil file", func(t *testing.T) {
		gh := config.GitHub{Token: "keep"}
		gh.Merge(nil, func(string) bool { return false })
		gt.Equal(t, gh.Token, "keep")
	})
}

func TestGitHub_NewClient(t *testing.T) {
	_, err := (&config.GitHub{PerPage: 100, Token: "ghp_x", BaseURL: "https://ghe.example.com/api/v3"}).NewClient()
	gt.NoError(t, err)

	_, err = (&config.GitHub{PerPage: 0}).NewClient()
	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.ErrTagInvalidArgument)).Equal(true)
}

func TestSentry_Disabled(t *testing.T) {
	s := &config.Sentry{}
	gt.Value(t, s.Enabled()).Equal(false)
	gt.NoError(t, s.Configure())
	s.Report(goerr.New("ignored"))
}
