package services

import (
	"context"

	"github.com/yungbote/readaloud-backend/internal/course"
	"github.com/yungbote/readaloud-backend/internal/domain"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

type ContentService interface {
	GetContent(ctx context.Context, coursePath, contentID string) (domain.Content, error)
	BrowseCourses(ctx context.Context, path string) (domain.CourseListing, error)
}

type contentService struct {
	log   *logger.Logger
	store *course.Store
}

func NewContentService(baseLog *logger.Logger, store *course.Store) ContentService {
	return &contentService{
		log:   baseLog.With("service", "ContentService"),
		store: store,
	}
}

// Course reads are local and short, so a cancelled request still gets its
// answer rather than an internal error.
func (s *contentService) GetContent(ctx context.Context, coursePath, contentID string) (domain.Content, error) {
	return s.store.Content(coursePath, contentID)
}

func (s *contentService) BrowseCourses(ctx context.Context, path string) (domain.CourseListing, error) {
	return s.store.Browse(path)
}
