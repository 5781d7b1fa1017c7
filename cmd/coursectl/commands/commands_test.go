package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/readaloud-backend/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		contentID = domain.IntroID
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "english")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := "Welcome\nHi there\n---\nPart Two\nMore\n---\nThe End\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lesson.txt"), []byte(body), 0o644))
	return root
}

func TestSectionsPrintsGenericChain(t *testing.T) {
	root := fixture(t)
	out, err := run(t, "sections", filepath.Join(root, "english", "lesson.txt"))
	require.NoError(t, err)

	var contents []domain.Content
	require.NoError(t, json.Unmarshal([]byte(out), &contents))
	require.Len(t, contents, 3)
	assert.Equal(t, "lesson-1", contents[0].ID)
	assert.Equal(t, "The End", contents[2].Title)
}

func TestContentAppliesIntro(t *testing.T) {
	root := fixture(t)
	out, err := run(t, "content", "english/lesson.txt", "--root", root, "--id", "lesson-2")
	require.NoError(t, err)

	var c domain.Content
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "lesson-2", c.ID)
	require.NotNil(t, c.PreviousID)
	assert.Equal(t, domain.IntroID, *c.PreviousID)
}

func TestTreeListsFolders(t *testing.T) {
	root := fixture(t)
	out, err := run(t, "tree", "--root", root)
	require.NoError(t, err)

	var listing domain.CourseListing
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "english", listing.Items[0].Path)
}

func TestContentMissingFile(t *testing.T) {
	root := fixture(t)
	_, err := run(t, "content", "english/nope.txt", "--root", root)
	assert.Error(t, err)
}
