package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIVersion is the GitHub REST API version used when none is
// configured.
const DefaultAPIVersion = "2022-11-28"

// Config holds everything one invocation needs: the operation, the target
// object, and the GitHub connection settings.
type Config struct {
	GitHub    GitHubConfig `mapstructure:"github"`
	Operation string       `mapstructure:"operation"`
	Labels    string       `mapstructure:"labels"`
	ObjectID  int          `mapstructure:"object_id"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	APIVersion string `mapstructure:"api_version"`
	Owner      string `mapstructure:"owner"`
	Repository string `mapstructure:"repository"`
	BaseURL    string `mapstructure:"base_url"`
}

// NewConfig creates a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIVersion: DefaultAPIVersion,
		},
	}
}

// Load reads configuration from the environment. Besides the GHLABEL_
// prefixed variables, the bare names exported by the surrounding action
// environment (token, operation, labels, obj_id, owner, repository, api)
// and the standard GITHUB_TOKEN / GITHUB_REPOSITORY are honored.
func (c *Config) Load() error {
	v := viper.New()

	v.SetEnvPrefix("GHLABEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("github.token", "GHLABEL_GITHUB_TOKEN", "GITHUB_TOKEN", "token")
	v.BindEnv("github.api_version", "GHLABEL_API_VERSION", "api")
	v.BindEnv("github.owner", "GHLABEL_OWNER", "owner")
	v.BindEnv("github.repository", "GHLABEL_REPOSITORY", "repository")
	v.BindEnv("github.base_url", "GHLABEL_BASE_URL", "GITHUB_API_URL")
	v.BindEnv("operation", "GHLABEL_OPERATION", "operation")
	v.BindEnv("labels", "GHLABEL_LABELS", "labels")
	v.BindEnv("object_id", "GHLABEL_OBJECT_ID", "obj_id")

	v.SetDefault("github.api_version", DefaultAPIVersion)

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// GITHUB_REPOSITORY carries "owner/repo" in CI; use it for whichever
	// half was not set explicitly.
	if c.GitHub.Owner == "" || c.GitHub.Repository == "" {
		if repoEnv := os.Getenv("GITHUB_REPOSITORY"); repoEnv != "" {
			owner, repo, ok := splitRepository(repoEnv)
			if ok {
				if c.GitHub.Owner == "" {
					c.GitHub.Owner = owner
				}
				if c.GitHub.Repository == "" {
					c.GitHub.Repository = repo
				}
			}
		}
	}

	return nil
}

// Validate checks the configuration for one invocation. Defaults are
// filled in where the value is optional.
func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return errors.New("GitHub token is required")
	}
	if c.Operation == "" {
		return errors.New("operation is required")
	}
	if c.ObjectID <= 0 {
		return errors.New("object id must be a positive integer")
	}
	if c.GitHub.Owner == "" {
		return errors.New("owner is required")
	}
	if c.GitHub.Repository == "" {
		return errors.New("repository is required")
	}

	if c.GitHub.APIVersion == "" {
		c.GitHub.APIVersion = DefaultAPIVersion
	}

	return nil
}

// ParseLabels splits the comma-separated labels input into a label list.
// Whitespace around names is trimmed and empty elements are dropped, so
// an empty or absent input yields an empty set.
func (c *Config) ParseLabels() []string {
	return ParseLabels(c.Labels)
}

// ParseLabels parses a comma-separated label string.
func ParseLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			labels = append(labels, part)
		}
	}
	return labels
}

// splitRepository splits an "owner/repo" string.
func splitRepository(s string) (owner, repo string, ok bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
