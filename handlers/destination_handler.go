package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type DestinationHandler struct {
	destinationService services.DestinationService
	Helper             *helper.HTTPHelper
}

func NewDestinationHandler(destinationService services.DestinationService, h *helper.HTTPHelper) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService, Helper: h}
}

func (h *DestinationHandler) CreateDestinationTravel(c *gin.Context) {
	var req models.CreateDestinationInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.destinationService.CreateDestinationTravel(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "destination", out.Item))
}

func (h *DestinationHandler) EditDestinationTravel(c *gin.Context) {
	var req models.EditDestinationInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.destinationService.EditDestinationTravel(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "destination", out.Item))
}

func (h *DestinationHandler) UpdateDestinationTravelStatus(c *gin.Context) {
	status, err := bindStatus(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.destinationService.UpdateDestinationTravelStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "destination", out.Item))
}

func (h *DestinationHandler) DeleteDestinationTravel(c *gin.Context) {
	msg, err := h.destinationService.DeleteDestinationTravel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *DestinationHandler) GetDestinationTravel(c *gin.Context) {
	dest, err := h.destinationService.GetDestinationTravel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, dest)
}

func (h *DestinationHandler) GetHighlightedDestinations(c *gin.Context) {
	dests, err := h.destinationService.GetHighlightedDestinations(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, dests)
}

func (h *DestinationHandler) GetAllPublishedDestinations(c *gin.Context) {
	dests, err := h.destinationService.GetAllPublishedDestinations(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, dests)
}

func (h *DestinationHandler) GetAllDestinationTravels(c *gin.Context) {
	filter, err := bindContentFilter(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.destinationService.GetAllDestinationTravels(c.Request.Context(), filter)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}

func (h *DestinationHandler) SearchTourTitles(c *gin.Context) {
	dests, err := h.destinationService.SearchTourTitles(c.Request.Context(), c.Query("title"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, dests)
}
