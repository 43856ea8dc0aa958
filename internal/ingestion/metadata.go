package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Source kinds recorded in Metadata.
const (
	SourceFile  = "file"
	SourceURL   = "url"
	SourceInput = "input"
)

// Metadata describes an ingested job description or résumé.
type Metadata struct {
	Source    string `json:"source"`
	URL       string `json:"url,omitempty"`
	Path      string `json:"path,omitempty"`
	Title     string `json:"title,omitempty"`    // Posting title when fetched from a job board
	Platform  string `json:"platform,omitempty"` // Detected job board platform
	Timestamp string `json:"timestamp"`          // RFC3339 format
	Hash      string `json:"hash"`               // SHA256 hex digest of the cleaned text
	Chars     int    `json:"chars"`
	Words     int    `json:"words"`
	Rendered  bool   `json:"rendered,omitempty"`
	FromCache bool   `json:"from_cache,omitempty"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     len([]rune(content)),
		Words:     len(strings.Fields(content)),
	}
}

func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
