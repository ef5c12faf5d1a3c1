package main

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/nj-eka/LetterStatsGo/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fixture struct {
	dir    string
	fileA  string
	fileB  string
	logArg []string
}

func newFixture(t *testing.T, a, b string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		fileA:  filepath.Join(dir, "a.txt"),
		fileB:  filepath.Join(dir, "b.txt"),
		logArg: []string{"--log_file", filepath.Join(dir, "test.log")},
	}
	require.NoError(t, os.WriteFile(f.fileA, []byte(a), 0644))
	require.NoError(t, os.WriteFile(f.fileB, []byte(b), 0644))
	t.Setenv(ConfigFileEnv, filepath.Join(dir, "absent.yml"))
	return f
}

func (f fixture) args(extra ...string) []string {
	return append(append(append([]string{}, f.logArg...), extra...), f.fileA, f.fileB)
}

func TestExecuteEndToEnd(t *testing.T) {
	f := newFixture(t, "AaBb", "ooOO")
	var out, errOut bytes.Buffer

	code := execute(context.Background(), f.args(), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, strings.Join([]string{
		"Полная статистика:",
		"A : 1",
		"B : 1",
		"a : 1",
		"b : 1",
		"ИТОГО : 4",
		"OO : 3",
		"ИТОГО : 3",
		"",
		"Статистика после фильтрации:",
		"B : 1",
		"b : 1",
		"ИТОГО : 2",
		"OO : 3",
		"ИТОГО : 3",
		"",
	}, "\n"), out.String())
	assert.Empty(t, errOut.String())
}

func TestExecuteCyrillic(t *testing.T) {
	f := newFixture(t, "Ёж ел", "Жжение, ссора; Аа ааа")
	var out, errOut bytes.Buffer

	code := execute(context.Background(), f.args(), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Equal(t, strings.Join([]string{
		"Полная статистика:",
		"Ё : 1",
		"е : 1",
		"ж : 1",
		"л : 1",
		"ИТОГО : 4",
		"АА : 3",
		"ЖЖ : 1",
		"СС : 1",
		"ИТОГО : 5",
		"",
		"Статистика после фильтрации:",
		"ж : 1",
		"л : 1",
		"ИТОГО : 2",
		"АА : 3",
		"ИТОГО : 3",
		"",
	}, "\n"), out.String())
}

func TestExecuteWrongArgs(t *testing.T) {
	f := newFixture(t, "a", "b")
	for _, args := range [][]string{
		{},
		{f.fileA},
		{f.fileA, f.fileB, f.fileA},
	} {
		var out, errOut bytes.Buffer
		code := execute(context.Background(), append(append([]string{}, f.logArg...), args...), &out, &errOut)
		assert.Equal(t, 0, code)
		assert.Contains(t, out.String(), "Usage:")
		// usage shows the label default, but no report line is printed
		assert.NotContains(t, out.String(), output.DefaultTotalLabel+" : ")
		assert.NotContains(t, out.String(), output.TitleFull)
	}
}

func TestExecuteMissingFile(t *testing.T) {
	f := newFixture(t, "a", "b")
	require.NoError(t, os.Remove(f.fileB))
	var out, errOut bytes.Buffer

	code := execute(context.Background(), f.args(), &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "b.txt")
}

func TestExecuteInvalidOptions(t *testing.T) {
	f := newFixture(t, "a", "b")
	for _, extra := range [][]string{
		{"--single_filter", "digits"},
		{"--pair_case", "title"},
		{"--output_format", "xml"},
		{"--log_level", "loud"},
		{"--no_such_flag"},
	} {
		var out, errOut bytes.Buffer
		code := execute(context.Background(), f.args(extra...), &out, &errOut)
		assert.Equal(t, 1, code, extra)
		assert.Empty(t, out.String(), extra)
	}
}

func TestExecuteOptions(t *testing.T) {
	f := newFixture(t, "AaBb", "ooOO bb")
	var out, errOut bytes.Buffer

	code := execute(context.Background(), f.args(
		"--single_filter", "consonant",
		"--pair_filter", "none",
		"--pair_case", "lower",
		"--total_label", "TOTAL",
	), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	sections := strings.Split(out.String(), "\n\n")
	require.Len(t, sections, 2)
	assert.Equal(t, "Статистика после фильтрации:\nA : 1\na : 1\nTOTAL : 2\nbb : 1\noo : 3\nTOTAL : 4\n", sections[1])
}

func TestExecuteJSON(t *testing.T) {
	f := newFixture(t, "AaBb", "ooOO")
	var out, errOut bytes.Buffer

	code := execute(context.Background(), f.args("-f", "json"), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var doc struct {
		Sections []struct {
			Title  string `json:"title"`
			Blocks []struct {
				Name  string `json:"name"`
				Total int    `json:"total"`
			} `json:"blocks"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, 4, doc.Sections[0].Blocks[0].Total)
	assert.Equal(t, 2, doc.Sections[1].Blocks[0].Total)
	assert.Equal(t, "pairs", doc.Sections[1].Blocks[1].Name)
}

func TestExecuteVerbose(t *testing.T) {
	f := newFixture(t, "AaBb", "ooOO")
	var out, errOut bytes.Buffer

	code := execute(context.Background(), f.args("-v"), &out, &errOut)
	require.Equal(t, 0, code)
	assert.Contains(t, errOut.String(), "Pass [single] stats: done")
	assert.Contains(t, errOut.String(), "Pass [pairs] stats: done")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "letterstats.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("output_format: yaml\ntotal_label: SUM\npair_case: lower\n"), 0644))
	t.Setenv(EnvPrefix+"PAIR_CASE", "upper")
	t.Setenv("TOTAL_LABEL", "BARE")
	t.Setenv("VERBOSE", "true")

	cfg := defaultConfig()
	require.NoError(t, loadConfig(context.Background(), &cfg, configFile))
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "SUM", cfg.TotalLabel)
	// environment overrides the file
	assert.Equal(t, "upper", cfg.PairCase)
	assert.Equal(t, DefaultSingleFilter, cfg.SingleFilter)
	// unprefixed variables are not config
	assert.False(t, cfg.Verbose)

	cfg = defaultConfig()
	require.NoError(t, loadConfig(context.Background(), &cfg, filepath.Join(dir, "absent.yml")))
	assert.Equal(t, DefaultFormat, cfg.Format)
}

func TestExecuteConfigFile(t *testing.T) {
	f := newFixture(t, "AaBb", "ooOO")
	configFile := filepath.Join(f.dir, "letterstats.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("total_label: SUM\n"), 0644))
	t.Setenv(ConfigFileEnv, configFile)

	var out, errOut bytes.Buffer
	code := execute(context.Background(), f.args(), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "SUM : 4\n")
	assert.NotContains(t, out.String(), "ИТОГО")
}
