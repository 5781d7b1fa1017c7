package course

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

// Store reads course files below a root directory. It keeps no state
// between calls: every lookup re-parses the file.
type Store struct {
	log  *logger.Logger
	root string
}

func NewStore(log *logger.Logger, root string) *Store {
	if root == "" {
		root = "."
	}
	return &Store{
		log:  log.With("service", "CourseStore"),
		root: filepath.Clean(root),
	}
}

func (s *Store) Root() string { return s.root }

// Contents parses coursePath into its chain without the intro rewrite.
func (s *Store) Contents(coursePath string) ([]domain.Content, error) {
	full, err := s.resolve(coursePath)
	if err != nil {
		return nil, err
	}
	sections, err := SplitFile(full)
	if err != nil {
		return nil, err
	}
	contents := BuildContents(sections, BaseID(full))
	s.log.Debug("Parsed course file", "course_path", coursePath, "sections", len(contents))
	return contents, nil
}

// Content returns the page with the given id. The first page is always
// served as "intro" and the second page points back to it, so a file needs
// at least two sections.
func (s *Store) Content(coursePath, id string) (domain.Content, error) {
	if strings.TrimSpace(id) == "" {
		id = domain.IntroID
	}
	contents, err := s.Contents(coursePath)
	if err != nil {
		return domain.Content{}, err
	}
	if err := ApplyIntro(contents); err != nil {
		return domain.Content{}, err
	}
	for _, c := range contents {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Content{}, apierr.NotFound("content_not_found", fmt.Errorf("content %q not found in %s", id, coursePath))
}

// ApplyIntro rewrites the first id to "intro" and the second page's
// previous link to match.
func ApplyIntro(contents []domain.Content) error {
	if len(contents) < 2 {
		return apierr.Validation("course_too_short", fmt.Errorf("course needs at least 2 sections, found %d", len(contents)))
	}
	intro := domain.IntroID
	contents[0].ID = intro
	contents[1].PreviousID = &intro
	return nil
}

var errOutsideRoot = errors.New("path escapes course root")

// resolve joins a course-relative path onto the root and refuses anything
// that climbs out of it.
func (s *Store) resolve(rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return "", apierr.NotFound("course_not_found", errors.New("course path is empty"))
	}
	full, err := s.join(rel)
	if err != nil {
		return "", apierr.NotFound("course_not_found", fmt.Errorf("%s: %w", rel, err))
	}
	return full, nil
}

func (s *Store) join(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	r, err := filepath.Rel(s.root, full)
	if err != nil {
		return "", err
	}
	if r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", errOutsideRoot
	}
	return full, nil
}
