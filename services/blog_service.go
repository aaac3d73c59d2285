package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"travel-gateway/models"
	"travel-gateway/repositories"
)

type BlogService interface {
	CreateBlog(ctx context.Context, input models.CreateBlogInput) (*Outcome[models.Blog], error)
	EditBlog(ctx context.Context, id string, input models.EditBlogInput) (*Outcome[models.Blog], error)
	UpdateBlogStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.Blog], error)
	DeleteBlog(ctx context.Context, id string) (string, error)
	GetOneBlog(ctx context.Context, id string) (*models.Blog, error)
	GetHighlightedBlog(ctx context.Context) (*models.Blog, error)
	GetAllPublishedBlogs(ctx context.Context) ([]models.Blog, error)
	GetAllDraftBlogs(ctx context.Context) ([]models.Blog, error)
	GetAllArchivedBlogs(ctx context.Context) ([]models.Blog, error)
	GetAllBlogs(ctx context.Context, filter models.ContentFilter) (*models.Page[models.Blog], error)
	SearchBlogs(ctx context.Context, title string) ([]models.Blog, error)
}

type blogService struct {
	blogRepo repositories.BlogRepository
	tagRepo  repositories.BlogTagRepository
	deps     ContentDeps
	now      func() time.Time
}

func NewBlogService(blogRepo repositories.BlogRepository, tagRepo repositories.BlogTagRepository, deps ContentDeps) BlogService {
	return &blogService{
		blogRepo: blogRepo,
		tagRepo:  tagRepo,
		deps:     deps.withDefaults(),
		now:      time.Now,
	}
}

func blogPrerequisites(tagID *string) PrerequisiteCheck {
	return func() error {
		if tagID == nil || *tagID == "" {
			return models.BadRequest("Please assign a tag before publishing")
		}
		return nil
	}
}

func (s *blogService) CreateBlog(ctx context.Context, input models.CreateBlogInput) (*Outcome[models.Blog], error) {
	tagID := trimmedOrNil(input.TagID)
	if tagID != nil {
		if _, err := s.tagRepo.GetByID(ctx, *tagID); err != nil {
			return nil, translateNotFound(err, "Blog Tag not found")
		}
	}

	state, err := blogWorkflow.Initial(input.Status, blogPrerequisites(tagID), s.now())
	if err != nil {
		return nil, err
	}

	content, err := s.deps.packRichText(input.Content)
	if err != nil {
		return nil, err
	}

	blog := &models.Blog{
		Title:        strings.TrimSpace(input.Title),
		Content:      content,
		CoverMedia:   input.CoverMedia,
		TagID:        tagID,
		ContentState: state,
	}
	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}
	slog.Info("blog created", "id", blog.ID, "status", blog.Status)

	stored, err := s.GetOneBlog(ctx, blog.ID)
	if err != nil {
		return nil, err
	}

	message := "Blog saved as draft successfully"
	if stored.Status == models.StatusPublished {
		message = "Blog published successfully"
	}
	return &Outcome[models.Blog]{Message: message, Item: stored}, nil
}

func (s *blogService) EditBlog(ctx context.Context, id string, input models.EditBlogInput) (*Outcome[models.Blog], error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Blog not found")
	}
	if blog.Status == models.StatusArchived || blog.Archived {
		return nil, models.BadRequest("Cannot edit an archived blog")
	}

	if input.Title != nil {
		blog.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		content, err := s.deps.packRichText(*input.Content)
		if err != nil {
			return nil, err
		}
		blog.Content = content
	}
	if input.CoverMedia != nil {
		blog.CoverMedia = *input.CoverMedia
	}
	if input.TagID != nil {
		tagID := trimmedOrNil(input.TagID)
		if tagID != nil {
			if _, err := s.tagRepo.GetByID(ctx, *tagID); err != nil {
				return nil, translateNotFound(err, "Blog Tag not found")
			}
		}
		blog.TagID = tagID
		blog.Tag = nil
	}

	check := blogPrerequisites(blog.TagID)
	clearHighlights := false
	if input.Status != nil && *input.Status != blog.Status {
		t, err := blogWorkflow.Apply(&blog.ContentState, *input.Status, check, s.now())
		if err != nil {
			return nil, err
		}
		clearHighlights = t.ClearHighlights
		s.deps.Metrics.RecordTransition(blogWorkflow.Rules().Entity, string(t.To))
	} else if blog.Status.Live() {
		if err := check(); err != nil {
			return nil, err
		}
	}

	if err := s.blogRepo.Save(ctx, blog, blog.ID, clearHighlights); err != nil {
		return nil, err
	}

	stored, err := s.GetOneBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.Blog]{Message: "Blog updated successfully", Item: stored}, nil
}

func (s *blogService) UpdateBlogStatus(ctx context.Context, id string, status models.ContentStatus) (*Outcome[models.Blog], error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Blog not found")
	}

	t, err := blogWorkflow.Apply(&blog.ContentState, status, blogPrerequisites(blog.TagID), s.now())
	if err != nil {
		return nil, err
	}
	if err := s.blogRepo.UpdateStatus(ctx, blog, blog.ID, t.ClearHighlights); err != nil {
		return nil, err
	}
	s.deps.Metrics.RecordTransition(blogWorkflow.Rules().Entity, string(t.To))
	slog.Info("blog status changed", "id", id, "from", t.From, "to", t.To)

	stored, err := s.GetOneBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Outcome[models.Blog]{Message: t.Message, Item: stored}, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, id string) (string, error) {
	if err := s.blogRepo.Delete(ctx, id); err != nil {
		return "", translateNotFound(err, "Blog not found")
	}
	slog.Info("blog deleted", "id", id)
	return "Blog deleted successfully", nil
}

func (s *blogService) GetOneBlog(ctx context.Context, id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err, "Blog not found")
	}
	s.unpack(blog)
	return blog, nil
}

func (s *blogService) GetHighlightedBlog(ctx context.Context) (*models.Blog, error) {
	blog, err := s.blogRepo.FirstHighlighted(ctx)
	if err != nil || blog == nil {
		return nil, err
	}
	s.unpack(blog)
	return blog, nil
}

func (s *blogService) GetAllPublishedBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.unpackAll(s.blogRepo.ListPublished(ctx))
}

func (s *blogService) GetAllDraftBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.unpackAll(s.blogRepo.ListByStatus(ctx, models.StatusDraft))
}

func (s *blogService) GetAllArchivedBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.unpackAll(s.blogRepo.ListByStatus(ctx, models.StatusArchived))
}

func (s *blogService) GetAllBlogs(ctx context.Context, filter models.ContentFilter) (*models.Page[models.Blog], error) {
	paging, err := prepareContentFilter(&filter, s.now())
	if err != nil {
		return nil, err
	}

	blogs, total, err := s.blogRepo.List(ctx, filter, paging)
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		s.unpack(&blogs[i])
	}
	return &models.Page[models.Blog]{Data: blogs, Total: total, Page: paging.Page, PageSize: paging.PageSize}, nil
}

// SearchBlogs returns no results for a blank title without querying.
func (s *blogService) SearchBlogs(ctx context.Context, title string) ([]models.Blog, error) {
	if strings.TrimSpace(title) == "" {
		return []models.Blog{}, nil
	}
	return s.unpackAll(s.blogRepo.SearchTitle(ctx, title, SearchLimit))
}

func (s *blogService) unpack(blog *models.Blog) {
	blog.Content = s.deps.Compressor.Decompress(blog.Content)
}

func (s *blogService) unpackAll(blogs []models.Blog, err error) ([]models.Blog, error) {
	if err != nil {
		return nil, err
	}
	for i := range blogs {
		s.unpack(&blogs[i])
	}
	return blogs, nil
}
