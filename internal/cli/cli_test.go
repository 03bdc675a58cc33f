package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/glyphedit/internal/cli"
)

var testInfo = cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}

// execute runs the root command with a throwaway config file so the
// user's own settings never leak into a test.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "glyphedit.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[editor]\ntabSize = 2\n"), 0o600))

	cmd := cli.NewRootCommand(testInfo)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfg, "--color", "never"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "glyphedit", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"colorize", "langs", "replay", "config", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestColorizePlain(t *testing.T) {
	src := "int main() {\n\treturn 0; // done\n}\n"
	path := writeFile(t, "main.c", src)

	out, err := execute(t, "", "colorize", path)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestColorizeStdinLineNumbers(t *testing.T) {
	out, err := execute(t, "a\nb", "colorize", "--line-numbers")
	require.NoError(t, err)
	assert.Equal(t, "1 a\n2 b\n", out)
}

func TestColorizeTokens(t *testing.T) {
	out, err := execute(t, "int x; // note\n", "colorize", "--lang", "c", "--tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "1:1\tkeyword\t\"int\"")
	assert.Contains(t, out, "comment\t\"// note\"")
}

func TestColorizeErrors(t *testing.T) {
	_, err := execute(t, "", "colorize", "--lang", "cobol")
	require.Error(t, err)

	_, err = execute(t, "", "colorize", "--palette", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")

	_, err = execute(t, "", "colorize", filepath.Join(t.TempDir(), "missing.c"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLangs(t *testing.T) {
	out, err := execute(t, "", "langs")
	require.NoError(t, err)
	assert.Contains(t, out, "Lua")
	assert.Contains(t, out, "comments: --, --[[ ]]")

	out, err = execute(t, "", "langs", "--classes")
	require.NoError(t, err)
	assert.Contains(t, out, "known_identifier")
	assert.Contains(t, out, "Known Identifier")
}

func TestReplay(t *testing.T) {
	out, err := execute(t, "", "replay", filepath.Join("..", "script", "testdata"))
	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
}

func TestReplayFailure(t *testing.T) {
	bad := writeFile(t, "bad.yaml", "text: a\nexpect:\n  text: b\n")

	out, err := execute(t, "", "replay", bad)
	require.ErrorIs(t, err, cli.ErrScriptsFailed)
	assert.Contains(t, out, "FAIL")
}

func TestReplayNoScripts(t *testing.T) {
	_, err := execute(t, "", "replay", t.TempDir())
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "tabSize = 2")
}

func TestConfigCommandBadFile(t *testing.T) {
	cmd := cli.NewRootCommand(testInfo)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "config"})
	require.Error(t, cmd.Execute())
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
}
