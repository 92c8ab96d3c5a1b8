package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Token:      "test-token",
			APIVersion: DefaultAPIVersion,
			Owner:      "douhashi",
			Repository: "ghlabel",
		},
		Operation: "add",
		Labels:    "bug",
		ObjectID:  123,
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads action-style environment variables", func(t *testing.T) {
		t.Setenv("token", "test-token")
		t.Setenv("operation", "add")
		t.Setenv("labels", "bug,urgent")
		t.Setenv("obj_id", "123")
		t.Setenv("owner", "douhashi")
		t.Setenv("repository", "ghlabel")
		t.Setenv("api", "2023-01-01")

		cfg := NewConfig()
		require.NoError(t, cfg.Load())

		assert.Equal(t, "test-token", cfg.GitHub.Token)
		assert.Equal(t, "add", cfg.Operation)
		assert.Equal(t, "bug,urgent", cfg.Labels)
		assert.Equal(t, 123, cfg.ObjectID)
		assert.Equal(t, "douhashi", cfg.GitHub.Owner)
		assert.Equal(t, "ghlabel", cfg.GitHub.Repository)
		assert.Equal(t, "2023-01-01", cfg.GitHub.APIVersion)
	})

	t.Run("GITHUB_TOKEN is honored", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "env-token")

		cfg := NewConfig()
		require.NoError(t, cfg.Load())

		assert.Equal(t, "env-token", cfg.GitHub.Token)
	})

	t.Run("owner and repository default from GITHUB_REPOSITORY", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "douhashi/ghlabel")

		cfg := NewConfig()
		require.NoError(t, cfg.Load())

		assert.Equal(t, "douhashi", cfg.GitHub.Owner)
		assert.Equal(t, "ghlabel", cfg.GitHub.Repository)
	})

	t.Run("explicit owner wins over GITHUB_REPOSITORY", func(t *testing.T) {
		t.Setenv("GITHUB_REPOSITORY", "someone/else")
		t.Setenv("owner", "douhashi")

		cfg := NewConfig()
		require.NoError(t, cfg.Load())

		assert.Equal(t, "douhashi", cfg.GitHub.Owner)
		assert.Equal(t, "else", cfg.GitHub.Repository)
	})

	t.Run("api version defaults when unset", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Load())

		assert.Equal(t, DefaultAPIVersion, cfg.GitHub.APIVersion)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing token",
			mutate:  func(c *Config) { c.GitHub.Token = "" },
			wantErr: "token is required",
		},
		{
			name:    "missing operation",
			mutate:  func(c *Config) { c.Operation = "" },
			wantErr: "operation is required",
		},
		{
			name:    "zero object id",
			mutate:  func(c *Config) { c.ObjectID = 0 },
			wantErr: "object id",
		},
		{
			name:    "missing owner",
			mutate:  func(c *Config) { c.GitHub.Owner = "" },
			wantErr: "owner is required",
		},
		{
			name:    "missing repository",
			mutate:  func(c *Config) { c.GitHub.Repository = "" },
			wantErr: "repository is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("empty api version is defaulted", func(t *testing.T) {
		cfg := validConfig()
		cfg.GitHub.APIVersion = ""

		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultAPIVersion, cfg.GitHub.APIVersion)
	})
}

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single label", input: "bug", want: []string{"bug"}},
		{name: "multiple labels", input: "bug,urgent", want: []string{"bug", "urgent"}},
		{name: "whitespace is trimmed", input: " bug , urgent ", want: []string{"bug", "urgent"}},
		{name: "empty elements are dropped", input: "bug,,urgent,", want: []string{"bug", "urgent"}},
		{name: "empty input yields empty set", input: "", want: nil},
		{name: "only separators yields empty set", input: ", ,", want: nil},
		{name: "label names may contain spaces", input: "good first issue,bug", want: []string{"good first issue", "bug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLabels(tt.input))
		})
	}
}
