package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resumatch/internal/fetch"
)

// MaxDocumentBytes bounds how much of a file or reader is ingested.
const MaxDocumentBytes = 2 << 20

var (
	multiSpace     = regexp.MustCompile(`[ \t\f\v]+`)
	excessiveBlank = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessiveBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving headings, bullets and indentation.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	indent := ""
	if n := len(line) - len(trimmed); n > 0 {
		indent = strings.Repeat(" ", n)
	}

	// unicode bullets pasted from PDFs become markdown bullets
	if isBulletLine(trimmed) {
		if strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ") {
			_, rest, _ := strings.Cut(trimmed, " ")
			trimmed = "- " + rest
		}
		return indent + trimmed[:2] + multiSpace.ReplaceAllString(strings.TrimSpace(trimmed[2:]), " ")
	}

	return indent + multiSpace.ReplaceAllString(trimmed, " ")
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// IngestFromFile reads a text or HTML file, cleans it, and returns cleaned text with metadata.
// HTML files are reduced to their main content the same way fetched postings are.
func IngestFromFile(path string) (string, *Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()

	content, err := readLimited(f)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	if isHTMLFile(path) {
		content, err = fetch.ExtractMainText(content, fetch.JobPostingSelectors(), fetch.PlatformNoiseSelectors(fetch.PlatformUnknown)...)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
	}

	cleanedText := CleanText(content)
	metadata := NewMetadata(cleanedText, SourceFile)
	metadata.Path = path
	return cleanedText, metadata, nil
}

// IngestFromReader cleans text read from r, typically standard input or an upload.
func IngestFromReader(r io.Reader) (string, *Metadata, error) {
	content, err := readLimited(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input: %w", err)
	}
	cleanedText := CleanText(content)
	return cleanedText, NewMetadata(cleanedText, SourceInput), nil
}

func readLimited(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxDocumentBytes {
		return "", fmt.Errorf("document exceeds %d bytes", MaxDocumentBytes)
	}
	return string(data), nil
}
