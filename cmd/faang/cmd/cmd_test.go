package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dbmrq/faang/internal/catalog"
	faangerrors "github.com/dbmrq/faang/internal/errors"
)

// run executes a fresh command tree in dir with color disabled.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)
	t.Setenv("NO_COLOR", "")

	root := NewRootCmd(catalog.Default())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--no-color"}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, ".faang", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type resourceJSON struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Type     string `json:"resource_type"`
	IsFree   bool   `json:"is_free"`
}

func decodeResources(t *testing.T, out string) []resourceJSON {
	t.Helper()
	var rs []resourceJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rs))
	return rs
}

func TestHelp(t *testing.T) {
	out, err := run(t, t.TempDir(), "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Awesome FAANG Interview Resources CLI")
	for _, sub := range []string{"list", "search", "show", "categories", "stats", "roadmap", "browse", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := run(t, t.TempDir(), "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "FAANG Interview CLI version: dev")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "FAANG Interview CLI version:")
	assert.Contains(t, out, "Go:")
}

func TestList(t *testing.T) {
	out, err := run(t, t.TempDir(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "FAANG Interview Resources")
	assert.Contains(t, out, "NeetCode 150")
	assert.Contains(t, out, fmt.Sprintf("Total: %d resources", catalog.Default().Len()))
}

func TestList_Filters(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, r resourceJSON)
	}{
		{
			name:  "category",
			args:  []string{"-c", "system_design"},
			check: func(t *testing.T, r resourceJSON) { assert.Equal(t, "system_design", r.Category) },
		},
		{
			name:  "type",
			args:  []string{"--type", "book"},
			check: func(t *testing.T, r resourceJSON) { assert.Equal(t, "book", r.Type) },
		},
		{
			name:  "free",
			args:  []string{"-f"},
			check: func(t *testing.T, r resourceJSON) { assert.True(t, r.IsFree) },
		},
		{
			name: "combined and case-insensitive",
			args: []string{"-c", "System-Design", "-t", "BOOK"},
			check: func(t *testing.T, r resourceJSON) {
				assert.Equal(t, "system_design", r.Category)
				assert.Equal(t, "book", r.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, t.TempDir(), append([]string{"list", "-o", "json"}, tt.args...)...)
			require.NoError(t, err)

			rs := decodeResources(t, out)
			require.NotEmpty(t, rs)
			for _, r := range rs {
				tt.check(t, r)
			}
		})
	}
}

func TestList_NoMatches(t *testing.T) {
	out, err := run(t, t.TempDir(), "list", "-c", "ai_ml", "-t", "tool")
	require.NoError(t, err)
	assert.Contains(t, out, "No resources found matching the criteria.")

	out, err = run(t, t.TempDir(), "list", "-c", "ai_ml", "-t", "tool", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestList_InvalidChoice(t *testing.T) {
	_, err := run(t, t.TempDir(), "list", "-c", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown category "bogus"`)

	_, err = run(t, t.TempDir(), "list", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestList_ConfigFreeOnly(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "list:\n  free_only: true\n")

	out, err := run(t, dir, "list", "-o", "json")
	require.NoError(t, err)
	for _, r := range decodeResources(t, out) {
		assert.True(t, r.IsFree, "%s should be free", r.Title)
	}

	out, err = run(t, dir, "list", "-o", "json", "--free=false")
	require.NoError(t, err)
	assert.Len(t, decodeResources(t, out), catalog.Default().Len())
}

func TestOutputFormatFromEnv(t *testing.T) {
	t.Setenv("FAANG_OUTPUT_FORMAT", "json")
	out, err := run(t, t.TempDir(), "list")
	require.NoError(t, err)
	assert.Len(t, decodeResources(t, out), catalog.Default().Len())
}

func TestOutputFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "output:\n  format: json\n")

	out, err := run(t, dir, "stats", "-o", "yaml")
	require.NoError(t, err)

	var stats struct {
		Total int `yaml:"total"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &stats))
	assert.Equal(t, catalog.Default().Len(), stats.Total)
}

func TestConfigErrors(t *testing.T) {
	t.Run("explicit path missing", func(t *testing.T) {
		_, err := run(t, t.TempDir(), "--config", "nope.yaml", "list")
		require.Error(t, err)
		assert.True(t, errors.Is(err, faangerrors.ErrConfig))
	})

	t.Run("invalid value", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "output:\n  format: xml\n")

		_, err := run(t, dir, "list")
		require.Error(t, err)
		fe, ok := faangerrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "output.format", fe.Details["field"])
	})
}

func TestSearch(t *testing.T) {
	out, err := run(t, t.TempDir(), "search", "leetcode")
	require.NoError(t, err)
	assert.Contains(t, out, "Search Results for 'leetcode'")
	assert.Contains(t, out, "LeetCode Grind 75")
	assert.Contains(t, out, "Found:")
}

func TestSearch_JoinsWords(t *testing.T) {
	out, err := run(t, t.TempDir(), "search", "system", "design", "-o", "json")
	require.NoError(t, err)
	assert.NotEmpty(t, decodeResources(t, out))
}

func TestSearch_NoMatches(t *testing.T) {
	out, err := run(t, t.TempDir(), "search", "zzzqqq")
	require.NoError(t, err)
	assert.Contains(t, out, "No resources found for query: 'zzzqqq'")
}

func TestSearch_RequiresQuery(t *testing.T) {
	_, err := run(t, t.TempDir(), "search")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := run(t, t.TempDir(), "show", "blind", "75")
	require.NoError(t, err)
	assert.Contains(t, out, "Blind 75")

	r, err := catalog.Default().Find("Blind 75")
	require.NoError(t, err)
	assert.Contains(t, out, r.URL())

	out, err = run(t, t.TempDir(), "show", r.ID().String()[:8], "-o", "json")
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, r.ID().String(), got["id"])
}

func TestShow_NotFound(t *testing.T) {
	_, err := run(t, t.TempDir(), "show", "no such resource")
	require.Error(t, err)
	assert.True(t, errors.Is(err, faangerrors.ErrNotFound))
}

func TestCategories(t *testing.T) {
	out, err := run(t, t.TempDir(), "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "Resource Categories")
	assert.Contains(t, out, "system_design (")
}

func TestStats(t *testing.T) {
	out, err := run(t, t.TempDir(), "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Resource Statistics")
	assert.Contains(t, out, "Total Resources:")
	assert.Contains(t, out, "By Category:")
}

func TestRoadmap(t *testing.T) {
	out, err := run(t, t.TempDir(), "roadmap")
	require.NoError(t, err)
	assert.Contains(t, out, "FAANG Interview Preparation Roadmap")
	assert.Contains(t, out, "Week")
}

func TestRoadmap_Week(t *testing.T) {
	out, err := run(t, t.TempDir(), "roadmap", "--week", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Week 12 of 16")
	assert.Contains(t, out, "ByteByteGo")

	_, err = run(t, t.TempDir(), "roadmap", "-w", "17")
	require.Error(t, err)
	assert.True(t, errors.Is(err, faangerrors.ErrUsage))
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "")

	root := NewRootCmd(catalog.Default())
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"--verbose", "search", "graph"})

	require.NoError(t, root.Execute())
	assert.Contains(t, errOut.String(), "command started")
	assert.NotContains(t, out.String(), "command started")
}

func TestLogDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")
	writeConfig(t, dir, fmt.Sprintf("log:\n  dir: %s\n  level: debug\n", logDir))

	_, err := run(t, dir, "stats")
	require.NoError(t, err)

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
