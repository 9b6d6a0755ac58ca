package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindmate-ai/mindmate/mindmate"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ExpandsEnvAndSetsDefaults(t *testing.T) {
	t.Setenv("TEST_API_KEY", "sk-from-env")

	cfg, err := Load(writeConfig(t, `
provider:
  api_key: ${TEST_API_KEY}
  model: claude-3-5-haiku-20241022
`))
	require.NoError(t, err)

	assert.Equal(t, "sk-from-env", cfg.Provider.APIKey)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "anthropic", cfg.Provider.Backend)
	assert.Equal(t, "medium", cfg.Provider.Detail)
	assert.Equal(t, 15*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, 3, cfg.Provider.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Provider.RetryDelay)

	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Provider.APIKey = "sk-test"
		cfg.setDefaults()
		return cfg
	}

	t.Run("missing api key", func(t *testing.T) {
		cfg := base()
		cfg.Provider.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := base()
		cfg.Provider.Backend = "llama-farm"
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid detail", func(t *testing.T) {
		cfg := base()
		cfg.Provider.Detail = "verbose"
		assert.Error(t, cfg.Validate())
	})
}

func TestClientConfig_RoutesKeyToBackend(t *testing.T) {
	cfg := &Config{}
	cfg.Provider.APIKey = "sk-test"
	cfg.Provider.Backend = "openai"
	cfg.Provider.Model = "gpt-4o-mini"
	cfg.setDefaults()

	cc := cfg.ClientConfig()
	assert.Equal(t, mindmate.BackendOpenAI, cc.Backend)
	assert.Equal(t, "sk-test", cc.OpenAIAPIKey)
	assert.Equal(t, "", cc.AnthropicAPIKey)
	assert.Equal(t, "gpt-4o-mini", cc.DefaultModel)
}

func TestDetailLevel_Parsing(t *testing.T) {
	cfg := &Config{}
	cfg.Provider.Detail = "detailed"
	assert.Equal(t, mindmate.DetailDetailed, cfg.DetailLevel())

	cfg.Provider.Detail = "short"
	assert.Equal(t, mindmate.DetailShort, cfg.DetailLevel())

	cfg.Provider.Detail = ""
	assert.Equal(t, mindmate.DetailMedium, cfg.DetailLevel())
}
