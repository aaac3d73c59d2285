package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

// TagHandler serves the two lookup catalogues: blog tags and tour types.
type TagHandler struct {
	tagService  services.BlogTagService
	typeService services.TourTypeService
	Helper      *helper.HTTPHelper
}

func NewTagHandler(tagService services.BlogTagService, typeService services.TourTypeService, h *helper.HTTPHelper) *TagHandler {
	return &TagHandler{tagService: tagService, typeService: typeService, Helper: h}
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.NamedInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.tagService.CreateTag(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "tag", out.Item))
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, tags)
}

func (h *TagHandler) EditTag(c *gin.Context) {
	var req models.EditNamedInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.tagService.EditTag(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "tag", out.Item))
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	msg, err := h.tagService.DeleteTag(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *TagHandler) CreateTourType(c *gin.Context) {
	var req models.NamedInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.typeService.CreateTourType(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "tourType", out.Item))
}

func (h *TagHandler) GetTourTypes(c *gin.Context) {
	types, err := h.typeService.GetTourTypes(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, types)
}

func (h *TagHandler) EditTourType(c *gin.Context) {
	var req models.EditNamedInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.typeService.EditTourType(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "tourType", out.Item))
}

func (h *TagHandler) DeleteTourType(c *gin.Context) {
	msg, err := h.typeService.DeleteTourType(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}
