package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueFilename(t *testing.T) {
	first := UniqueFilename("bewerberprofil", ".docx")
	second := UniqueFilename("bewerberprofil", ".docx")

	assert.Regexp(t, `^bewerberprofil_\d{8}_\d{6}_[0-9a-f]{8}\.docx$`, first)
	assert.NotEqual(t, first, second, "filenames generated in the same second must differ")
}

func TestUniqueFilenameKeepsExtensionDot(t *testing.T) {
	name := UniqueFilename("bewerberprofil", ".md")

	assert.True(t, strings.HasSuffix(name, ".md"), "name = %q", name)
	assert.NotContains(t, name, "..")
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output", "profile")

	require.NoError(t, EnsureOutputDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent for an existing directory
	assert.NoError(t, EnsureOutputDir(dir))
}

func TestEnsureOutputDirFailsOnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := EnsureOutputDir(filepath.Join(path, "sub"))

	assert.Error(t, err)
}
