package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/middleware"
	"travel-gateway/models"

	"github.com/gin-gonic/gin"
)

// bindContentFilter reads the shared list query of the content endpoints.
func bindContentFilter(c *gin.Context, h *helper.HTTPHelper) (models.ContentFilter, error) {
	var filter models.ContentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return filter, models.BadRequest("Invalid query: " + err.Error())
	}
	var err error
	if filter.StartDate, err = h.ParseTimeQuery(c, "startDate"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = h.ParseTimeQuery(c, "endDate"); err != nil {
		return filter, err
	}
	return filter, nil
}

func bindPageQuery(c *gin.Context) (models.PageQuery, error) {
	var query models.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return query, models.BadRequest("Invalid query: " + err.Error())
	}
	return query, nil
}

func bindStatus(c *gin.Context, h *helper.HTTPHelper) (models.ContentStatus, error) {
	var input models.StatusInput
	if err := h.BindJSON(c, &input); err != nil {
		return "", err
	}
	return input.Status, nil
}

func sendMessage(c *gin.Context, h *helper.HTTPHelper, message string) {
	h.SendSuccess(c, models.MessageResponse{Message: message})
}

// currentUserID is set by middleware.RequireAuth.
func currentUserID(c *gin.Context) (string, error) {
	id := c.GetString(middleware.UserIDKey)
	if id == "" {
		return "", models.Unauthorized("Authentication required")
	}
	return id, nil
}
