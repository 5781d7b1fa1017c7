package course

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/apierr"
)

// CourseExt is the only file extension exposed by Browse.
const CourseExt = ".txt"

// Browse lists a directory below the root (folders and course files,
// folders first) or, when rel names a course file, returns its text.
func (s *Store) Browse(rel string) (domain.CourseListing, error) {
	full, err := s.join(strings.TrimSpace(rel))
	if err != nil {
		return domain.CourseListing{}, apierr.Forbidden("access_denied", fmt.Errorf("%s: %w", rel, err))
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.CourseListing{}, apierr.NotFound("path_not_found", fmt.Errorf("path not found: %s", rel))
		}
		return domain.CourseListing{}, apierr.Internal("browse_failed", fmt.Errorf("stat %s: %w", rel, err))
	}

	if !info.IsDir() {
		if !strings.HasSuffix(info.Name(), CourseExt) {
			return domain.CourseListing{}, apierr.NotFound("path_not_found", fmt.Errorf("not a course file: %s", rel))
		}
		b, err := os.ReadFile(full)
		if err != nil {
			return domain.CourseListing{}, apierr.Internal("course_read_failed", fmt.Errorf("read %s: %w", rel, err))
		}
		return domain.CourseListing{
			Items: []domain.CourseItem{},
			File: &domain.CourseFile{
				Name:    info.Name(),
				Path:    s.relPath(full),
				Type:    domain.CourseItemFile,
				Content: string(b),
			},
		}, nil
	}

	entries, err := os.ReadDir(full)
	if err != nil {
		return domain.CourseListing{}, apierr.Internal("browse_failed", fmt.Errorf("read dir %s: %w", rel, err))
	}
	items := make([]domain.CourseItem, 0, len(entries))
	for _, e := range entries {
		typ := domain.CourseItemFile
		if e.IsDir() {
			typ = domain.CourseItemFolder
		} else if !strings.HasSuffix(e.Name(), CourseExt) {
			continue
		}
		items = append(items, domain.CourseItem{
			Name: e.Name(),
			Path: s.relPath(filepath.Join(full, e.Name())),
			Type: typ,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		fi, fj := items[i].Type == domain.CourseItemFolder, items[j].Type == domain.CourseItemFolder
		if fi != fj {
			return fi
		}
		return items[i].Name < items[j].Name
	})
	return domain.CourseListing{Items: items}, nil
}

func (s *Store) relPath(full string) string {
	r, err := filepath.Rel(s.root, full)
	if err != nil {
		return filepath.ToSlash(full)
	}
	return filepath.ToSlash(r)
}
