package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClientFromEnvDefaults(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "dk-test")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_BASE", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")

	c, err := NewClientFromEnv()
	require.NoError(t, err)
	require.Equal(t, "dk-test", c.APIKey)
	require.Equal(t, defaultBaseURL, c.BaseURL)
	require.Equal(t, defaultModel, c.Model)
}

func TestNewClientFromEnvOverrides(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_API_BASE", "https://example.com/v1/")
	t.Setenv("OPENAI_MODEL", "gpt-test")

	c, err := NewClientFromEnv()
	require.NoError(t, err)
	require.Equal(t, "sk-test", c.APIKey)
	require.Equal(t, "https://example.com/v1", c.BaseURL)
	require.Equal(t, "gpt-test", c.Model)
}

func TestNewClientFromEnvMissingKey(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	_, err := NewClientFromEnv()
	require.Error(t, err)
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "lon...", truncate("long enough body", 6))
	require.Equal(t, "ab", truncate("abcdef", 2))
}
