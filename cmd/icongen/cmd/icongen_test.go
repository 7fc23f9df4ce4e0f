package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uzytkownik/patternfly-icongen/errors"
)

const testCatalog = `[
	[{"Name": "wrench", "ReactName": "WrenchIcon", "Style": "fas", "ContextualUsage": "a wrench"}],
	{"Name": "github", "ReactName": "GithubIcon", "Style": "fab", "ContextualUsage": "the GitHub brand mark"}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icons.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerate(t *testing.T) {
	result, err := generate(writeCatalog(t, testCatalog), true)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Contains(t, result.TypeDefinitions, "Wrench,")
	assert.Contains(t, result.ClassesImpl, `Self::Github => fab(classes, "github"),`)
	assert.Contains(t, result.TypeDefinitions, `#[cfg(feature = "icons-fab")]`)
}

func TestGenerateWithoutFeatureGates(t *testing.T) {
	result, err := generate(writeCatalog(t, testCatalog), false)
	require.NoError(t, err)
	assert.NotContains(t, result.Render(), "#[cfg")
}

func TestGenerateUnknownStyleFails(t *testing.T) {
	catalog := `[{"Name": "bad", "ReactName": "BadIcon", "Style": "foo"}]`
	_, err := generate(writeCatalog(t, catalog), true)
	require.Error(t, err)
	assert.True(t, errors.IsUnknownStyle(err))
}

func TestGenerateOnceWritesFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "generated.rs")
	require.NoError(t, generateOnce(writeCatalog(t, testCatalog), output, true))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pub enum Icon {")
	assert.Contains(t, string(data), "impl AsClasses for Icon {")
}

func TestGenerateOnceFatalErrorLeavesOutputUntouched(t *testing.T) {
	output := filepath.Join(t.TempDir(), "generated.rs")
	require.NoError(t, os.WriteFile(output, []byte("previous"), 0644))

	bad := writeCatalog(t, `[{"Name": "bad", "ReactName": "BadIcon", "Style": "foo"}]`)
	require.Error(t, generateOnce(bad, output, true))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data), "a failed run must not clobber the previous output")
}

func TestCheckUpToDateAndStale(t *testing.T) {
	input := writeCatalog(t, testCatalog)
	output := filepath.Join(t.TempDir(), "generated.rs")
	require.NoError(t, generateOnce(input, output, true))

	result, err := generate(input, true)
	require.NoError(t, err)

	existing, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, result.Render(), string(existing))

	// Drift the generated file; the rendered output no longer matches
	require.NoError(t, os.WriteFile(output, append(existing, '\n'), 0644))
	existing, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.NotEqual(t, result.Render(), string(existing))
}
