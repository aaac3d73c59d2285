package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type SubscriberHandler struct {
	subscriberService services.SubscriberService
	Helper            *helper.HTTPHelper
}

func NewSubscriberHandler(subscriberService services.SubscriberService, h *helper.HTTPHelper) *SubscriberHandler {
	return &SubscriberHandler{subscriberService: subscriberService, Helper: h}
}

func (h *SubscriberHandler) SubscribeToUpdates(c *gin.Context) {
	var req models.SubscribeInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	msg, err := h.subscriberService.SubscribeToUpdates(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendCreated(c, models.MessageResponse{Message: msg})
}

func (h *SubscriberHandler) GetAllSubscribers(c *gin.Context) {
	query, err := bindPageQuery(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.subscriberService.GetAllSubscribers(c.Request.Context(), query)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}

func (h *SubscriberHandler) SearchSubscribers(c *gin.Context) {
	subs, err := h.subscriberService.SearchSubscribers(c.Request.Context(), c.Query("term"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, subs)
}
