package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ") // Should not have 4 spaces
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	// Should have max 2 consecutive newlines
	assert.NotContains(t, result, "\n\n\n\n")
	// But should preserve up to 2
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	// All should be normalized to LF
	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	result1 := CleanText(input)
	result2 := CleanText(input)

	// Same input should produce identical output
	assert.Equal(t, result1, result2)
}

func TestCleanText_EmptyInput(t *testing.T) {
	result := CleanText("")
	assert.Empty(t, result)
}

func TestCleanText_OnlyWhitespace(t *testing.T) {
	result := CleanText("   \n  \n  ")
	assert.Empty(t, result)
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	input := "    Indented line\n  Less indented"
	result := CleanText(input)

	// Should preserve relative indentation
	assert.Contains(t, result, "Indented")
	assert.Contains(t, result, "Less indented")
}

func TestCleanText_UnicodeBullets(t *testing.T) {
	input := "• Python\n  · SQL   and dbt\n\u00a0Remote"
	result := CleanText(input)

	assert.Equal(t, "- Python\n  - SQL and dbt\n Remote", result)
}

func TestIngestFromFile_Success(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("# Job Title\n\nDescription   here"), 0644))

	cleanedText, metadata, err := IngestFromFile(testFile)
	require.NoError(t, err)

	assert.Equal(t, "# Job Title\n\nDescription here", cleanedText)
	assert.Equal(t, SourceFile, metadata.Source)
	assert.Equal(t, testFile, metadata.Path)
	assert.Len(t, metadata.Hash, 64)
	assert.Equal(t, 5, metadata.Words)
	assert.NotEmpty(t, metadata.Timestamp)
}

func TestIngestFromFile_FileNotFound(t *testing.T) {
	cleanedText, metadata, err := IngestFromFile("/nonexistent/file.txt")

	assert.Error(t, err)
	assert.Empty(t, cleanedText)
	assert.Nil(t, metadata)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_HashStable(t *testing.T) {
	tmpDir := t.TempDir()
	testFile1 := filepath.Join(tmpDir, "test1.txt")
	testFile2 := filepath.Join(tmpDir, "test2.txt")
	require.NoError(t, os.WriteFile(testFile1, []byte("Content 1"), 0644))
	require.NoError(t, os.WriteFile(testFile2, []byte("Content 2"), 0644))

	_, first, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	_, again, err := IngestFromFile(testFile1)
	require.NoError(t, err)
	_, other, err := IngestFromFile(testFile2)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, again.Hash)
	assert.NotEqual(t, first.Hash, other.Hash)
}

func TestIngestFromFile_TooLarge(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(testFile, []byte(strings.Repeat("a", MaxDocumentBytes+1)), 0644))

	_, _, err := IngestFromFile(testFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestIngestFromReader(t *testing.T) {
	text, metadata, err := IngestFromReader(strings.NewReader("Python  developer\r\nSQL"))
	require.NoError(t, err)
	assert.Equal(t, "Python developer\nSQL", text)
	assert.Equal(t, SourceInput, metadata.Source)
	assert.Empty(t, metadata.Path)
}

func TestCleanText_ComplexFormatting(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("testdata", "complex_formatting.txt"))
	require.NoError(t, err)

	result := CleanText(string(content))

	assert.Contains(t, result, "# Senior Software Engineer")
	assert.Contains(t, result, "## Responsibilities")
	assert.Contains(t, result, "- Go experience")
	assert.Contains(t, result, "* Go (5+ years)")
	assert.NotContains(t, result, "\n\n\n")
}
