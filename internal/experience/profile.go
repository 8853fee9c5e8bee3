package experience

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-fit/internal/schemas"
	"github.com/jonathan/resume-fit/internal/types"
	"gopkg.in/yaml.v3"
)

// Supported candidate profile encodings
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LoadCandidateProfile loads a candidate profile from a JSON or YAML file. The
// format is chosen by extension (.yaml and .yml are YAML, everything else JSON).
func LoadCandidateProfile(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	profile, err := ParseCandidateProfile(content, FormatForPath(path))
	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Path == "" {
		loadErr.Path = path
	}
	return profile, err
}

// FormatForPath maps a file extension to a profile format.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseCandidateProfile decodes raw profile content, validates it against the
// candidate schema and normalizes it.
func ParseCandidateProfile(content []byte, format string) (*types.CandidateProfile, error) {
	tree, err := decodeTree(content, format)
	if err != nil {
		return nil, err
	}

	// Re-encode so YAML input goes through the same schema as JSON input.
	canonical, err := json.Marshal(tree)
	if err != nil {
		return nil, &LoadError{Message: "failed to re-encode profile", Cause: err}
	}
	if err := schemas.Validate(schemas.CandidateProfile, canonical); err != nil {
		return nil, &LoadError{Message: "schema validation failed", Cause: err}
	}

	return NormalizeCandidateProfile(tree)
}

func decodeTree(content []byte, format string) (map[string]interface{}, error) {
	var tree map[string]interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &tree); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal YAML", Cause: err}
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &tree); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
		}
	default:
		return nil, &LoadError{Message: fmt.Sprintf("unsupported format %q", format)}
	}
	if tree == nil {
		return nil, &LoadError{Message: "profile is empty"}
	}
	return tree, nil
}
