package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set resolves profiles per scenario category. The zero category list falls
// back to the default profile, so a Set built from an empty file is still valid.
type Set struct {
	Default    Profile
	Categories map[string]Profile
}

// ForCategory returns the profile for a scenario category, falling back to the
// default profile when no override exists.
func (s *Set) ForCategory(category string) Profile {
	if p, ok := s.Categories[category]; ok {
		return p
	}
	return s.Default
}

// DefaultSet returns a Set with built-in defaults and no category overrides.
func DefaultSet() *Set {
	return &Set{
		Default:    Default(),
		Categories: make(map[string]Profile),
	}
}

// fileSchema is the YAML layout of an override file:
//
//	default:
//	  audio:
//	    quiet_threshold: 0.03
//	categories:
//	  presentation:
//	    pace:
//	      optimal_max_wpm: 150
//
// Sections are partial - anything not mentioned keeps its resolved default.
type fileSchema struct {
	Default    yaml.Node            `yaml:"default"`
	Categories map[string]yaml.Node `yaml:"categories"`
}

// LoadSet reads a YAML override file and resolves it against the built-in
// defaults. An empty path returns the default set. Category overrides are
// layered on top of the (possibly overridden) default profile, then sanitized.
func LoadSet(path string) (*Set, error) {
	set := DefaultSet()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse profile file: %w", err)
	}

	// Overlay the global default section. Decoding onto a pre-populated struct
	// gives merge semantics: absent keys keep their default values.
	if !schema.Default.IsZero() {
		if err := schema.Default.Decode(&set.Default); err != nil {
			return nil, fmt.Errorf("invalid default profile section: %w", err)
		}
	}
	set.Default.Sanitize()

	for category, node := range schema.Categories {
		p := set.Default
		if err := node.Decode(&p); err != nil {
			return nil, fmt.Errorf("invalid profile section for category %q: %w", category, err)
		}
		p.Sanitize()
		set.Categories[category] = p
	}

	return set, nil
}
