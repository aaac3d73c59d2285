package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type TourPackageHandler struct {
	tourService services.TourPackageService
	Helper      *helper.HTTPHelper
}

func NewTourPackageHandler(tourService services.TourPackageService, h *helper.HTTPHelper) *TourPackageHandler {
	return &TourPackageHandler{tourService: tourService, Helper: h}
}

func (h *TourPackageHandler) CreateTourPackage(c *gin.Context) {
	var req models.CreateTourPackageInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.tourService.CreateTourPackage(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "tour", out.Item))
}

func (h *TourPackageHandler) EditTourPackage(c *gin.Context) {
	var req models.EditTourPackageInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.tourService.EditTourPackage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "tour", out.Item))
}

func (h *TourPackageHandler) UpdateTourPackageStatus(c *gin.Context) {
	status, err := bindStatus(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.tourService.UpdateTourPackageStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "tour", out.Item))
}

func (h *TourPackageHandler) DeleteTourPackage(c *gin.Context) {
	msg, err := h.tourService.DeleteTourPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *TourPackageHandler) GetOneTourPackage(c *gin.Context) {
	tour, err := h.tourService.GetOneTourPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, tour)
}

func (h *TourPackageHandler) GetHighlightedTourPackages(c *gin.Context) {
	tours, err := h.tourService.GetHighlightedTourPackages(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, tours)
}

func (h *TourPackageHandler) GetAllPublishedTours(c *gin.Context) {
	tours, err := h.tourService.GetAllPublishedTours(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, tours)
}

func (h *TourPackageHandler) GetAllTours(c *gin.Context) {
	filter, err := bindContentFilter(c, h.Helper)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.tourService.GetAllTours(c.Request.Context(), filter)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}

func (h *TourPackageHandler) SearchTours(c *gin.Context) {
	tours, err := h.tourService.SearchTours(c.Request.Context(), c.Query("title"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, tours)
}
