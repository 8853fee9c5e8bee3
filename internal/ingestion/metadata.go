package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Metadata describes one ingested posting. The hash identifies postings with
// identical cleaned text regardless of where they were read from.
type Metadata struct {
	Source     string    `json:"source,omitempty"`
	Title      string    `json:"title,omitempty"` // HTML sources only
	Hash       string    `json:"hash"`            // hex SHA-256 of the cleaned text
	Characters int       `json:"characters"`
	IngestedAt time.Time `json:"ingested_at"`
}

// NewMetadata describes cleaned text read from source.
func NewMetadata(cleaned string, source string) *Metadata {
	return &Metadata{
		Source:     source,
		Hash:       ComputeHash(cleaned),
		Characters: utf8.RuneCountInString(cleaned),
		IngestedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// ComputeHash returns the hex SHA-256 digest of content.
func ComputeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
