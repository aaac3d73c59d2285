package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type VisaChecklistHandler struct {
	visaService services.VisaChecklistService
	Helper      *helper.HTTPHelper
}

func NewVisaChecklistHandler(visaService services.VisaChecklistService, h *helper.HTTPHelper) *VisaChecklistHandler {
	return &VisaChecklistHandler{visaService: visaService, Helper: h}
}

func (h *VisaChecklistHandler) CreateVisaChecklist(c *gin.Context) {
	var req models.CreateVisaChecklistInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.visaService.CreateVisaChecklist(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "checklist", out.Item))
}

func (h *VisaChecklistHandler) EditVisaChecklist(c *gin.Context) {
	var req models.EditVisaChecklistInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.visaService.EditVisaChecklist(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "checklist", out.Item))
}

func (h *VisaChecklistHandler) ChangeVisaChecklistStatus(c *gin.Context) {
	status, err := bindStatus(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.visaService.ChangeVisaChecklistStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "checklist", out.Item))
}

func (h *VisaChecklistHandler) DeleteVisaChecklist(c *gin.Context) {
	msg, err := h.visaService.DeleteVisaChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *VisaChecklistHandler) GetVisaChecklist(c *gin.Context) {
	checklist, err := h.visaService.GetVisaChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, checklist)
}

// GetHighlightedVisaChecklist responds with null when nothing is highlighted.
func (h *VisaChecklistHandler) GetHighlightedVisaChecklist(c *gin.Context) {
	checklist, err := h.visaService.GetHighlightedVisaChecklist(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, checklist)
}

func (h *VisaChecklistHandler) GetAllPublishedVisaChecklists(c *gin.Context) {
	checklists, err := h.visaService.GetAllPublishedVisaChecklists(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, checklists)
}

func (h *VisaChecklistHandler) GetAllVisaChecklists(c *gin.Context) {
	filter, err := bindContentFilter(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.visaService.GetAllVisaChecklists(c.Request.Context(), filter)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}

func (h *VisaChecklistHandler) SearchVisaChecklist(c *gin.Context) {
	checklists, err := h.visaService.SearchVisaChecklist(c.Request.Context(), c.Query("term"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, checklists)
}
