package action

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOutput(t *testing.T) {
	t.Run("appends name=value to the output file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		t.Setenv("GITHUB_OUTPUT", path)

		require.NoError(t, SetOutput("response", `{"labels":["bug"]}`))
		require.NoError(t, SetOutput("status", "ok"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "response={\"labels\":[\"bug\"]}\nstatus=ok\n", string(content))
	})

	t.Run("multi-line values use the heredoc form", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "output")
		t.Setenv("GITHUB_OUTPUT", path)

		require.NoError(t, SetOutput("response", "line one\nline two"))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "response<<ghadelimiter\nline one\nline two\nghadelimiter\n", string(content))
	})

	t.Run("no-op when GITHUB_OUTPUT is unset", func(t *testing.T) {
		t.Setenv("GITHUB_OUTPUT", "")

		assert.NoError(t, SetOutput("response", "value"))
	})

	t.Run("returns an error for an unwritable path", func(t *testing.T) {
		t.Setenv("GITHUB_OUTPUT", filepath.Join(t.TempDir(), "missing", "output"))

		assert.Error(t, SetOutput("response", "value"))
	})
}
