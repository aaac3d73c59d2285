package handlers

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: h}
}

func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req models.CreateBlogInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.blogService.CreateBlog(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "blog", out.Item))
}

func (h *BlogHandler) EditBlog(c *gin.Context) {
	var req models.EditBlogInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.blogService.EditBlog(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "blog", out.Item))
}

func (h *BlogHandler) UpdateBlogStatus(c *gin.Context) {
	status, err := bindStatus(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.blogService.UpdateBlogStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "blog", out.Item))
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	msg, err := h.blogService.DeleteBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *BlogHandler) GetOneBlog(c *gin.Context) {
	blog, err := h.blogService.GetOneBlog(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, blog)
}

// GetHighlightedBlog responds with null when nothing is highlighted.
func (h *BlogHandler) GetHighlightedBlog(c *gin.Context) {
	blog, err := h.blogService.GetHighlightedBlog(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, blog)
}

func (h *BlogHandler) GetAllPublishedBlogs(c *gin.Context) {
	h.sendList(c, h.blogService.GetAllPublishedBlogs)
}

func (h *BlogHandler) GetAllDraftBlogs(c *gin.Context) {
	h.sendList(c, h.blogService.GetAllDraftBlogs)
}

func (h *BlogHandler) GetAllArchivedBlogs(c *gin.Context) {
	h.sendList(c, h.blogService.GetAllArchivedBlogs)
}

func (h *BlogHandler) sendList(c *gin.Context, list func(ctx context.Context) ([]models.Blog, error)) {
	blogs, err := list(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, blogs)
}

func (h *BlogHandler) GetAllBlogs(c *gin.Context) {
	filter, err := bindContentFilter(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.blogService.GetAllBlogs(c.Request.Context(), filter)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}

func (h *BlogHandler) SearchBlogs(c *gin.Context) {
	blogs, err := h.blogService.SearchBlogs(c.Request.Context(), c.Query("title"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, blogs)
}
