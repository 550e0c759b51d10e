package config_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastawesy/reactorutils/core/config"
	ruerror "github.com/bastawesy/reactorutils/core/error"
	rulog "github.com/bastawesy/reactorutils/core/log"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, "reactorutils", cfg.General.AppName)
	assert.Equal(t, "en", cfg.General.Locale)
	assert.Equal(t, "messages", cfg.I18n.BaseName)
	assert.Equal(t, "en", cfg.I18n.DefaultLocale)
	assert.Empty(t, cfg.I18n.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout.Duration)
	assert.Equal(t, "application/json;charset=UTF-8", cfg.HTTP.ContentType)
	assert.Equal(t, "X-Request-ID", cfg.HTTP.RequestIDHeader)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "app.toml", `
[general]
locale = "ar"

[i18n]
dir = "/srv/messages"
format = "yaml"

[log]
level = "debug"
format = "json"

[http]
timeout = "5s"
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "ar", cfg.General.Locale)
	assert.Equal(t, "reactorutils", cfg.General.AppName, "unset keys keep defaults")
	assert.Equal(t, "/srv/messages", cfg.I18n.Dir)
	assert.Equal(t, "yaml", cfg.I18n.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout.Duration)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "app.yaml", `
general:
  locale: en-US
log:
  format: logfmt
http:
  timeout: 1m30s
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "en-US", cfg.General.Locale)
	assert.Equal(t, "logfmt", cfg.Log.Format)
	assert.Equal(t, 90*time.Second, cfg.HTTP.Timeout.Duration)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "app.toml", `
[log]
level = "debug"
`)
	t.Setenv("REACTORUTILS_LOG_LEVEL", "warn")
	t.Setenv("REACTORUTILS_I18N_DEFAULT_LOCALE", "ar")
	t.Setenv("REACTORUTILS_HTTP_TIMEOUT", "2s")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "ar", cfg.I18n.DefaultLocale)
	assert.Equal(t, 2*time.Second, cfg.HTTP.Timeout.Duration)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))

		require.Error(t, err)
		assert.True(t, ruerror.HasCode(err, ruerror.CodeMissingConfig))
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "bad.toml", "[log\nlevel ="))

		require.Error(t, err)
		assert.True(t, ruerror.HasCode(err, ruerror.CodeInvalidConfig))
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "bad.toml", "[http]\ntimeout = \"soon\"\n"))

		require.Error(t, err)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "bad.toml", "[log]\nlevel = \"loud\"\n"))

		require.Error(t, err)
		assert.True(t, ruerror.HasCode(err, ruerror.CodeInvalidConfig))
		assert.Contains(t, err.Error(), "log.level")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"bad locale", func(c *config.Config) { c.General.Locale = "english" }, "general.locale"},
		{"bad default locale", func(c *config.Config) { c.I18n.DefaultLocale = "" }, "i18n.default_locale"},
		{"bad bundle format", func(c *config.Config) { c.I18n.Format = "ini" }, "i18n.format"},
		{"empty base name", func(c *config.Config) { c.I18n.BaseName = " " }, "i18n.base_name"},
		{"watch without dir", func(c *config.Config) { c.I18n.Watch = true }, "i18n.watch"},
		{"bad log format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty output", func(c *config.Config) { c.Log.Output = "" }, "log.output"},
		{"negative timeout", func(c *config.Config) { c.HTTP.Timeout.Duration = -time.Second }, "http.timeout"},
		{"empty content type", func(c *config.Config) { c.HTTP.ContentType = "" }, "http.content_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.True(t, ruerror.HasCode(err, ruerror.CodeInvalidConfig))
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	assert.NoError(t, config.Default().Validate())
}

func TestLoadFromString(t *testing.T) {
	cfg, err := config.LoadFromString("general:\n  locale: ar\n", config.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "ar", cfg.General.Locale)

	cfg, err = config.LoadFromString("[general]\nlocale = \"en_GB\"\n", config.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, "en_GB", cfg.General.Locale)
}

func TestDurationText(t *testing.T) {
	var d config.Duration
	require.NoError(t, d.UnmarshalText([]byte("250ms")))
	assert.Equal(t, 250*time.Millisecond, d.Duration)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "250ms", string(text))

	assert.Error(t, d.UnmarshalText([]byte("later")))
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logCfg := config.LogConfig{Level: "debug", Format: "logfmt", Output: path}

	logger, closer, err := logCfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, rulog.LevelDebug, logger.GetLevel())

	logger.Debug("written to file")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")

	_, _, err = config.LogConfig{Level: "nope", Format: "json", Output: "stderr"}.NewLogger()
	assert.True(t, ruerror.HasCode(err, ruerror.CodeInvalidConfig))
}

func TestNewBundle(t *testing.T) {
	quiet := rulog.New().WithOutput(io.Discard)

	bundle, err := config.Default().I18n.NewBundle(context.Background(), quiet)
	require.NoError(t, err)
	assert.Equal(t, []string{"ar", "en"}, bundle.Locales())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "errors_de.yaml"), []byte("hello: Hallo {0}\n"), 0o644))

	bundle, err = config.I18nConfig{Dir: dir, BaseName: "errors", DefaultLocale: "de", Format: "yaml"}.NewBundle(context.Background(), quiet)
	require.NoError(t, err)
	msg, err := bundle.Message("hello", "Welt")
	require.NoError(t, err)
	assert.Equal(t, "Hallo Welt", msg)
}

func TestNewBundleWatchesDirectory(t *testing.T) {
	quiet := rulog.New().WithOutput(io.Discard)
	dir := t.TempDir()
	file := filepath.Join(dir, "messages_en.toml")
	require.NoError(t, os.WriteFile(file, []byte(`greeting = "Hello {0}"`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bundle, err := config.I18nConfig{Dir: dir, BaseName: "messages", Watch: true}.NewBundle(ctx, quiet)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(file, []byte(`greeting = "Hi {0}"`), 0o644))
	assert.Eventually(t, func() bool {
		msg, _ := bundle.Resolve("greeting", "en", "Sam")
		return msg == "Hi Sam"
	}, 5*time.Second, 20*time.Millisecond)

	_, err = config.I18nConfig{BaseName: "messages", Watch: true}.NewBundle(ctx, quiet)
	assert.True(t, ruerror.IsInvalidArgument(err), "embedded bundles cannot be watched")
}

func TestHTTPClientFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.RequestIDHeader = "X-Correlation-ID"
	cfg.HTTP.ContentType = "application/vnd.quota+json"
	cfg.HTTP.Timeout = config.Duration{Duration: 2 * time.Second}

	options := cfg.HTTP.ClientOptions(nil)
	assert.Equal(t, 2*time.Second, options.Timeout)
	assert.Equal(t, "application/vnd.quota+json", options.ContentType)
	assert.Equal(t, "X-Correlation-ID", options.RequestIDHeader)

	var seen http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := cfg.HTTP.NewClient(rulog.New().WithOutput(io.Discard))
	status, err := client.Do(context.Background(), http.MethodPost, server.URL, client.Entity(map[string]int{"units": 1}, nil), nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Equal(t, "application/vnd.quota+json", seen.Get("Content-Type"))
	assert.NotEmpty(t, seen.Get("X-Correlation-ID"))
}
