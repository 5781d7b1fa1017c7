package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Len(t, c.Voices, 11)
	assert.Len(t, c.Languages, 13)
	assert.Equal(t, "ash", c.DefaultVoice)
	assert.True(t, c.HasVoice("nova"))
	assert.False(t, c.HasVoice("robot"))
}

func TestResolveVoice(t *testing.T) {
	c := Default()

	v, err := c.ResolveVoice("")
	require.NoError(t, err)
	assert.Equal(t, "ash", v)

	v, err = c.ResolveVoice(" coral ")
	require.NoError(t, err)
	assert.Equal(t, "coral", v)

	_, err = c.ResolveVoice("robot")
	assert.True(t, apierr.Is(err, apierr.KindValidation))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
voices:
  - id: nova
    name: Nova
languages:
  - code: French
    name: Français
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nova", c.DefaultVoice)
	assert.Equal(t, "Français", c.Languages[0].Name)
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	for name, doc := range map[string]string{
		"no voices":       "languages: [{code: en, name: English}]",
		"no languages":    "voices: [{id: a, name: A}]",
		"duplicate voice": "voices: [{id: a, name: A}, {id: a, name: B}]\nlanguages: [{code: en, name: English}]",
		"bad default":     "default_voice: z\nvoices: [{id: a, name: A}]\nlanguages: [{code: en, name: English}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Voices, c.Voices)
}
