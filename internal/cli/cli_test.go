package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/sarf"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runSarf executes the sarf command against a root list in a temp dir.
func runSarf(t *testing.T, rootsFile string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--roots", rootsFile}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func writeRoots(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roots.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateCommand(t *testing.T) {
	roots := writeRoots(t, "كتب\nدرس\n")

	out, err := runSarf(t, roots, "generate", "كتب", "فاعل")
	require.NoError(t, err)
	assert.Equal(t, "كاتب\n", out)

	_, err = runSarf(t, roots, "generate", "قرأ", "فاعل")
	assert.ErrorIs(t, err, sarf.ErrUnknownRoot)

	_, err = runSarf(t, roots, "generate", "كتب", "xyz")
	assert.ErrorIs(t, err, sarf.ErrUnknownScheme)
}

func TestDeriveCommand(t *testing.T) {
	roots := writeRoots(t, "كتب\n")

	out, err := runSarf(t, roots, "derive", "كتب")
	require.NoError(t, err)
	assert.Contains(t, out, "مكتوب")
	assert.Contains(t, out, "استكتاب")
	assert.Contains(t, out, "(10 words)")

	_, err = runSarf(t, roots, "derive", "علم")
	assert.ErrorIs(t, err, sarf.ErrUnknownRoot)
}

func TestValidateAndDecompose(t *testing.T) {
	roots := writeRoots(t, "كتب\nدرس\n")

	out, err := runSarf(t, roots, "validate", "كاتب", "كتب")
	require.NoError(t, err)
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "فاعل")

	out, err = runSarf(t, roots, "validate", "مدرسة", "درس")
	require.NoError(t, err)
	assert.Contains(t, out, "✗")

	out, err = runSarf(t, roots, "decompose", "مكتوب")
	require.NoError(t, err)
	assert.Contains(t, out, "root: كتب")
	assert.Contains(t, out, "scheme: مفعول")
}

func TestAddCommandSavesRoots(t *testing.T) {
	roots := writeRoots(t, "كتب\n")

	out, err := runSarf(t, roots, "add", "درس", "كتب")
	require.NoError(t, err)
	assert.Contains(t, out, "'درس' added")
	assert.Contains(t, out, "'كتب' already present")

	out, err = runSarf(t, roots, "roots")
	require.NoError(t, err)
	assert.Contains(t, out, "درس")
	assert.Contains(t, out, "(2 roots)")

	_, err = runSarf(t, roots, "add", "كتاب")
	assert.ErrorIs(t, err, sarf.ErrInvalidRoot)
}

func TestMissingRootListStartsEmpty(t *testing.T) {
	roots := filepath.Join(t.TempDir(), "none.txt")

	out, err := runSarf(t, roots, "roots")
	require.NoError(t, err)
	assert.Contains(t, out, "(0 roots)")
}

func TestSchemesAndStats(t *testing.T) {
	roots := writeRoots(t, "كتب\nدرس\nعلم\n")

	out, err := runSarf(t, roots, "schemes")
	require.NoError(t, err)
	assert.Contains(t, out, "استفعال")
	assert.Contains(t, out, "(10 schemes)")

	out, err = runSarf(t, roots, "--capacity", "4", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "tree balanced")
	assert.Contains(t, out, "table capacity")
	assert.Contains(t, out, "16")
}

func TestCompleteCommand(t *testing.T) {
	roots := writeRoots(t, "كتب\nدرس\n")

	out, err := runSarf(t, roots, "complete", "مك")
	require.NoError(t, err)
	assert.Contains(t, out, "مكتب")
	assert.Contains(t, out, "مكتوب")
	assert.NotContains(t, out, "مدرس")
}

func TestInvalidOrderFlag(t *testing.T) {
	roots := writeRoots(t, "كتب\n")

	_, err := runSarf(t, roots, "--order", "random", "roots")
	assert.Error(t, err)
}

func TestSampleCommand(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "sample.txt")
	roots := filepath.Join(dir, "roots.txt")

	out, err := runSarf(t, roots, "sample", sample)
	require.NoError(t, err)
	assert.Contains(t, out, "sample root list written")

	out, err = runSarf(t, sample, "roots")
	require.NoError(t, err)
	assert.Contains(t, out, "(15 roots)")

	_, err = runSarf(t, roots, "sample", sample)
	assert.Error(t, err, "sample must not overwrite an existing file")
}

func TestShowCommand(t *testing.T) {
	roots := writeRoots(t, "كتب\nكتب\nدرس\n")

	out, err := runSarf(t, roots, "show", "كتب")
	require.NoError(t, err)
	assert.Contains(t, out, "freq: 2")
	assert.Contains(t, out, "مكتوب")
	assert.Contains(t, out, "(10 derivations)")

	_, err = runSarf(t, roots, "show", "علم")
	assert.ErrorIs(t, err, sarf.ErrUnknownRoot)
}

func TestCustomSchemes(t *testing.T) {
	roots := writeRoots(t, "كتب\n")

	out, err := runSarf(t, roots, "--scheme", "مفعال=مفعال", "generate", "كتب", "مفعال")
	require.NoError(t, err)
	assert.Equal(t, "مكتاب\n", out)

	out, err = runSarf(t, roots, "--scheme", "مفعال=مفعال", "show", "كتب")
	require.NoError(t, err)
	assert.Contains(t, out, "مكتاب")
	assert.Contains(t, out, "(11 derivations)")

	_, err = runSarf(t, roots, "--scheme", "مفعال", "schemes")
	assert.ErrorIs(t, err, sarf.ErrInvalidArgument)

	_, err = runSarf(t, roots, "--scheme", "x=abc", "schemes")
	assert.ErrorIs(t, err, sarf.ErrInvalidArgument)
}

func TestOrderFlagCompletion(t *testing.T) {
	cmd := NewRootCmd("test")
	complete, ok := cmd.GetFlagCompletionFunc("order")
	require.True(t, ok, "--order should offer completions")
	values, directive := complete(cmd, nil, "")
	assert.Equal(t, []string{"table", "name"}, values)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
