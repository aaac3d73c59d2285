package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricingService services.PricingService
	Helper         *helper.HTTPHelper
}

func NewPricingHandler(pricingService services.PricingService, h *helper.HTTPHelper) *PricingHandler {
	return &PricingHandler{pricingService: pricingService, Helper: h}
}

func (h *PricingHandler) CreateClientPriceOption(c *gin.Context) {
	var req models.PriceOptionInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.pricingService.CreateClientPriceOption(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendCreated(c, helper.Envelope(out.Message, "option", out.Item))
}

func (h *PricingHandler) EditClientPriceOption(c *gin.Context) {
	var req models.EditPriceOptionInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.pricingService.EditClientPriceOption(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "option", out.Item))
}

func (h *PricingHandler) DeleteClientPriceOption(c *gin.Context) {
	msg, err := h.pricingService.DeleteClientPriceOption(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *PricingHandler) GetClientPriceOptions(c *gin.Context) {
	query, err := bindPageQuery(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.pricingService.GetClientPriceOptions(c.Request.Context(), query)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}

func (h *PricingHandler) CreateVisaPriceOption(c *gin.Context) {
	var req models.VisaPriceOptionInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.pricingService.CreateVisaPriceOption(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendCreated(c, helper.Envelope(out.Message, "option", out.Item))
}

func (h *PricingHandler) EditVisaPriceOption(c *gin.Context) {
	var req models.EditVisaPriceOptionInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.pricingService.EditVisaPriceOption(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "option", out.Item))
}

func (h *PricingHandler) DeleteVisaPriceOption(c *gin.Context) {
	msg, err := h.pricingService.DeleteVisaPriceOption(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *PricingHandler) GetVisaPriceOptions(c *gin.Context) {
	query, err := bindPageQuery(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.pricingService.GetVisaPriceOptions(c.Request.Context(), query)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}
