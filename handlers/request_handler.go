package handlers

import (
	"context"

	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService services.RequestService
	Helper         *helper.HTTPHelper
}

func NewRequestHandler(requestService services.RequestService, h *helper.HTTPHelper) *RequestHandler {
	return &RequestHandler{requestService: requestService, Helper: h}
}

// submitRequest binds an intake form of type T and responds with the stored
// request under key.
func submitRequest[T any](h *RequestHandler, key string, create func(context.Context, T) (*services.Outcome[models.Request], error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if err := h.Helper.BindJSON(c, &req); err != nil {
			h.Helper.SendError(c, err)
			return
		}

		out, err := create(c.Request.Context(), req)
		if err != nil {
			h.Helper.SendError(c, err)
			return
		}
		h.Helper.SendCreated(c, helper.Envelope(out.Message, key, out.Item))
	}
}

func (h *RequestHandler) RequestFlightBooking() gin.HandlerFunc {
	return submitRequest(h, "flightRequest", h.requestService.RequestFlightBooking)
}

func (h *RequestHandler) CreateVisaRequest() gin.HandlerFunc {
	return submitRequest(h, "visaRequest", h.requestService.CreateVisaRequest)
}

func (h *RequestHandler) RequestPrivateJet() gin.HandlerFunc {
	return submitRequest(h, "requestData", h.requestService.RequestPrivateJet)
}

func (h *RequestHandler) RequestHotelReservation() gin.HandlerFunc {
	return submitRequest(h, "hotelReservation", h.requestService.RequestHotelReservation)
}

func (h *RequestHandler) RequestTourPackage() gin.HandlerFunc {
	return submitRequest(h, "tourPackageRequest", h.requestService.RequestTourPackage)
}

func (h *RequestHandler) RequestExecutiveShuttle() gin.HandlerFunc {
	return submitRequest(h, "shuttleRequest", h.requestService.RequestExecutiveShuttle)
}

func (h *RequestHandler) RequestTravelInsurance() gin.HandlerFunc {
	return submitRequest(h, "insuranceRequest", h.requestService.RequestTravelInsurance)
}

func (h *RequestHandler) RequestSehembzPay() gin.HandlerFunc {
	return submitRequest(h, "sehembzPayRequest", h.requestService.RequestSehembzPay)
}

func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	var req models.UpdateRequestStatusInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.requestService.UpdateRequestStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "request", out.Item))
}

func (h *RequestHandler) GetRequestByID(c *gin.Context) {
	req, err := h.requestService.GetRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, req)
}

func (h *RequestHandler) GetAllRequests(c *gin.Context) {
	var filter models.RequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.Helper.SendError(c, models.BadRequest("Invalid query: "+err.Error()))
		return
	}
	var err error
	if filter.StartDate, err = h.Helper.ParseTimeQuery(c, "startDate"); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	if filter.EndDate, err = h.Helper.ParseTimeQuery(c, "endDate"); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page, err := h.requestService.GetAllRequests(c.Request.Context(), filter)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, page)
}
