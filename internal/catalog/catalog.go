// Package catalog holds the voices and languages offered to learners.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
)

//go:embed default.yaml
var defaultYAML []byte

type Catalog struct {
	DefaultVoice string            `yaml:"default_voice"`
	Voices       []domain.Voice    `yaml:"voices"`
	Languages    []domain.Language `yaml:"languages"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded default is invalid: %v", err))
	}
	return c
}

// Load reads a catalog file; an empty path means the built-in catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(c.Voices) == 0 {
		return nil, errors.New("no voices configured")
	}
	if len(c.Languages) == 0 {
		return nil, errors.New("no languages configured")
	}
	seen := map[string]bool{}
	for _, v := range c.Voices {
		if strings.TrimSpace(v.ID) == "" {
			return nil, errors.New("voice with empty id")
		}
		if seen[v.ID] {
			return nil, fmt.Errorf("duplicate voice %q", v.ID)
		}
		seen[v.ID] = true
	}
	if c.DefaultVoice == "" {
		c.DefaultVoice = c.Voices[0].ID
	}
	if !seen[c.DefaultVoice] {
		return nil, fmt.Errorf("default voice %q is not in the voice list", c.DefaultVoice)
	}
	return &c, nil
}

func (c *Catalog) HasVoice(id string) bool {
	for _, v := range c.Voices {
		if v.ID == id {
			return true
		}
	}
	return false
}

// ResolveVoice maps an empty id to the default voice and rejects ids that
// are not in the catalog.
func (c *Catalog) ResolveVoice(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return c.DefaultVoice, nil
	}
	if !c.HasVoice(id) {
		return "", apierr.Validation("unknown_voice", fmt.Errorf("unknown voice %q", id))
	}
	return id, nil
}
