package inflect

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRuleFiles reads rule sets from YAML or JSON files. Each file holds a
// single rule set; the extension selects the decoder.
func LoadRuleFiles(paths ...string) ([]RuleSet, error) {
	if len(paths) == 0 {
		return nil, errors.New("inflect: no rule files configured")
	}

	sets := make([]RuleSet, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("inflect: read %s: %w", path, err)
		}

		set, err := DecodeRuleSet(path, data)
		if err != nil {
			return nil, fmt.Errorf("inflect: decode %s: %w", path, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// DecodeRuleSet decodes a rule set, choosing the format from the path
// extension.
func DecodeRuleSet(path string, data []byte) (RuleSet, error) {
	var set RuleSet

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &set); err != nil {
			return RuleSet{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return RuleSet{}, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return RuleSet{}, fmt.Errorf("unsupported extension %s", ext)
	}

	if strings.TrimSpace(set.Locale) == "" {
		return RuleSet{}, fmt.Errorf("empty locale in %s", path)
	}
	for i, irregular := range set.Irregulars {
		if irregular.Singular == "" || irregular.Plural == "" {
			return RuleSet{}, fmt.Errorf("%s: irregular %d needs singular and plural", set.Locale, i)
		}
	}
	return set, nil
}
