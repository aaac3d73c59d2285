package services

import (
	"context"
	"fmt"
	"testing"

	"travel-gateway/models"
	"travel-gateway/repositories"
	"travel-gateway/test/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type BlogServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	ctx     context.Context
	service BlogService
	tags    BlogTagService
	tag     *models.BlogTag
}

func (s *BlogServiceTestSuite) SetupTest() {
	s.db = testdb.New(s.T())
	s.ctx = context.Background()

	blogRepo := repositories.NewBlogRepository(s.db)
	tagRepo := repositories.NewBlogTagRepository(s.db)
	s.service = NewBlogService(blogRepo, tagRepo, ContentDeps{})
	s.tags = NewBlogTagService(tagRepo, blogRepo)

	out, err := s.tags.CreateTag(s.ctx, models.NamedInput{Name: "Safari"})
	s.Require().NoError(err)
	s.tag = out.Item
}

func statusPtr(s models.ContentStatus) *models.ContentStatus {
	return &s
}

func strPtr(s string) *string {
	return &s
}

func (s *BlogServiceTestSuite) publishedBlog(title string) *models.Blog {
	out, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{
		Title:   title,
		Content: "<p>" + title + "</p>",
		TagID:   &s.tag.ID,
		Status:  statusPtr(models.StatusPublished),
	})
	s.Require().NoError(err)
	return out.Item
}

func (s *BlogServiceTestSuite) TestCreateBlog_DefaultsToDraft() {
	out, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{Title: "Draft", Content: "hello world"})
	s.Require().NoError(err)

	s.Equal("Blog saved as draft successfully", out.Message)
	s.Equal(models.StatusDraft, out.Item.Status)
	s.Nil(out.Item.DatePublished)
	s.False(out.Item.Highlighted)
	s.False(out.Item.Archived)
	s.Equal("hello world", out.Item.Content)

	var raw models.Blog
	s.Require().NoError(s.db.First(&raw, "id = ?", out.Item.ID).Error)
	s.NotEqual("hello world", raw.Content, "content is stored compressed")
}

func (s *BlogServiceTestSuite) TestCreateBlog_PublishRequiresTag() {
	_, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{
		Title:  "No tag",
		Status: statusPtr(models.StatusPublished),
	})
	s.EqualError(err, "Please assign a tag before publishing")

	var count int64
	s.db.Model(&models.Blog{}).Count(&count)
	s.Zero(count)
}

func (s *BlogServiceTestSuite) TestCreateBlog_UnknownTag() {
	_, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{Title: "x", TagID: strPtr("8f14e45f-ceea-467f-a0e6-1b9a6f8e5a11")})
	var notFound models.ErrorNotFound
	s.ErrorAs(err, &notFound)
	s.Equal("Blog Tag not found", notFound.Message)
}

func (s *BlogServiceTestSuite) TestCreateBlog_Published() {
	blog := s.publishedBlog("Serengeti")
	s.Equal(models.StatusPublished, blog.Status)
	s.NotNil(blog.DatePublished)
	s.Require().NotNil(blog.Tag)
	s.Equal("Safari", blog.Tag.Name)
}

func (s *BlogServiceTestSuite) TestUpdateBlogStatus_SingleHighlight() {
	first := s.publishedBlog("First")
	second := s.publishedBlog("Second")

	out, err := s.service.UpdateBlogStatus(s.ctx, first.ID, models.StatusHighlighted)
	s.Require().NoError(err)
	s.Equal("Blog highlighted successfully.", out.Message)

	_, err = s.service.UpdateBlogStatus(s.ctx, second.ID, models.StatusHighlighted)
	s.Require().NoError(err)

	reloaded, err := s.service.GetOneBlog(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPublished, reloaded.Status)
	s.False(reloaded.Highlighted)

	highlighted, err := s.service.GetHighlightedBlog(s.ctx)
	s.Require().NoError(err)
	s.Require().NotNil(highlighted)
	s.Equal(second.ID, highlighted.ID)
	s.Equal("<p>Second</p>", highlighted.Content)
}

func (s *BlogServiceTestSuite) TestGetHighlightedBlog_None() {
	blog, err := s.service.GetHighlightedBlog(s.ctx)
	s.NoError(err)
	s.Nil(blog)
}

func (s *BlogServiceTestSuite) TestUpdateBlogStatus_NotFound() {
	_, err := s.service.UpdateBlogStatus(s.ctx, "missing", models.StatusPublished)
	s.EqualError(err, "Blog not found")
}

func (s *BlogServiceTestSuite) TestEditBlog() {
	blog := s.publishedBlog("Before")

	out, err := s.service.EditBlog(s.ctx, blog.ID, models.EditBlogInput{
		Title:   strPtr("After"),
		Content: strPtr("<p>new body</p><script>alert(1)</script>"),
	})
	s.Require().NoError(err)
	s.Equal("Blog updated successfully", out.Message)
	s.Equal("After", out.Item.Title)
	s.Equal("<p>new body</p>", out.Item.Content)
	s.Equal(models.StatusPublished, out.Item.Status)
}

func (s *BlogServiceTestSuite) TestContentRoundTrip() {
	cases := map[string]string{
		"Tom & Jerry: 5 < 6": "Tom & Jerry: 5 < 6",
		`<iframe src="https://www.youtube.com/embed/x" allowfullscreen></iframe>`: `<iframe src="https://www.youtube.com/embed/x" allowfullscreen=""></iframe>`,
		`<p style="color:red">hi</p>`:                                            `<p style="color: red">hi</p>`,
		`<iframe src="https://evil.example.com/x"></iframe><p>ok</p>`:            `<p>ok</p>`,
	}
	for content, want := range cases {
		out, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{Title: "Embeds", Content: content})
		s.Require().NoError(err)

		stored, err := s.service.GetOneBlog(s.ctx, out.Item.ID)
		s.Require().NoError(err)
		s.Equal(want, stored.Content, content)
	}
}

func (s *BlogServiceTestSuite) TestEditBlog_RemovingTagFromLiveBlogFails() {
	blog := s.publishedBlog("Tagged")

	_, err := s.service.EditBlog(s.ctx, blog.ID, models.EditBlogInput{TagID: strPtr("")})
	s.EqualError(err, "Please assign a tag before publishing")
}

func (s *BlogServiceTestSuite) TestEditBlog_Archived() {
	blog := s.publishedBlog("Old")
	_, err := s.service.UpdateBlogStatus(s.ctx, blog.ID, models.StatusArchived)
	s.Require().NoError(err)

	_, err = s.service.EditBlog(s.ctx, blog.ID, models.EditBlogInput{Title: strPtr("New")})
	s.EqualError(err, "Cannot edit an archived blog")
}

func (s *BlogServiceTestSuite) TestEditBlog_StatusChangeMovesToDraft() {
	blog := s.publishedBlog("Live")

	out, err := s.service.EditBlog(s.ctx, blog.ID, models.EditBlogInput{Status: statusPtr(models.StatusDraft)})
	s.Require().NoError(err)
	s.Equal(models.StatusDraft, out.Item.Status)
	s.Nil(out.Item.DatePublished)
}

func (s *BlogServiceTestSuite) TestDeleteBlog() {
	blog := s.publishedBlog("Gone")

	msg, err := s.service.DeleteBlog(s.ctx, blog.ID)
	s.Require().NoError(err)
	s.Equal("Blog deleted successfully", msg)

	_, err = s.service.DeleteBlog(s.ctx, blog.ID)
	s.EqualError(err, "Blog not found")
}

func (s *BlogServiceTestSuite) TestLegacyPlaintextContent() {
	legacy := &models.Blog{Title: "Legacy", Content: "plain <b>old</b> text", ContentState: models.NewContentState()}
	s.Require().NoError(s.db.Create(legacy).Error)

	blog, err := s.service.GetOneBlog(s.ctx, legacy.ID)
	s.Require().NoError(err)
	s.Equal("plain <b>old</b> text", blog.Content)
}

func (s *BlogServiceTestSuite) TestGetAllBlogs_SecondPage() {
	for i := 0; i < 15; i++ {
		_, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{Title: fmt.Sprintf("Blog %02d", i)})
		s.Require().NoError(err)
	}

	page, err := s.service.GetAllBlogs(s.ctx, models.ContentFilter{Page: 2, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(15), page.Total)
	s.Len(page.Data, 5)
	s.Equal(2, page.Page)
	s.Equal(10, page.PageSize)
}

func (s *BlogServiceTestSuite) TestGetAllBlogs_Filters() {
	s.publishedBlog("Kilimanjaro trek")
	s.publishedBlog("Zanzibar beaches")
	_, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{Title: "Kilimanjaro draft"})
	s.Require().NoError(err)

	page, err := s.service.GetAllBlogs(s.ctx, models.ContentFilter{Search: "kilimanjaro", Status: models.StatusPublished})
	s.Require().NoError(err)
	s.Require().Len(page.Data, 1)
	s.Equal("Kilimanjaro trek", page.Data[0].Title)

	page, err = s.service.GetAllBlogs(s.ctx, models.ContentFilter{TagID: s.tag.ID})
	s.Require().NoError(err)
	s.Equal(int64(2), page.Total)

	_, err = s.service.GetAllBlogs(s.ctx, models.ContentFilter{Status: "LIVE"})
	var bad models.ErrorBadRequest
	s.ErrorAs(err, &bad)
}

func (s *BlogServiceTestSuite) TestStatusLists() {
	s.publishedBlog("Published")
	_, err := s.service.CreateBlog(s.ctx, models.CreateBlogInput{Title: "Draft"})
	s.Require().NoError(err)

	published, err := s.service.GetAllPublishedBlogs(s.ctx)
	s.Require().NoError(err)
	s.Len(published, 1)

	drafts, err := s.service.GetAllDraftBlogs(s.ctx)
	s.Require().NoError(err)
	s.Len(drafts, 1)

	archived, err := s.service.GetAllArchivedBlogs(s.ctx)
	s.Require().NoError(err)
	s.Empty(archived)
}

func (s *BlogServiceTestSuite) TestSearchBlogs() {
	s.publishedBlog("Victoria Falls")
	s.publishedBlog("Lake Victoria")
	s.publishedBlog("Table Mountain")

	results, err := s.service.SearchBlogs(s.ctx, "VICTORIA")
	s.Require().NoError(err)
	s.Len(results, 2)
}

func (s *BlogServiceTestSuite) TestDeleteTag_BlockedWhileInUse() {
	s.publishedBlog("Uses tag")

	_, err := s.tags.DeleteTag(s.ctx, s.tag.ID)
	s.EqualError(err, "Cannot delete tag with blogs assighned to it")
}

func TestBlogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BlogServiceTestSuite))
}

// unusedBlogRepo fails the test on any call.
type unusedBlogRepo struct {
	repositories.BlogRepository
}

func TestSearchBlogs_BlankTermSkipsStore(t *testing.T) {
	service := NewBlogService(unusedBlogRepo{}, nil, ContentDeps{})

	for _, term := range []string{"", "   ", "\t\n"} {
		results, err := service.SearchBlogs(context.Background(), term)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}
