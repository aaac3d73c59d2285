package handlers

import (
	"travel-gateway/helper"
	"travel-gateway/models"
	"travel-gateway/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, helper.Envelope(out.Message, "user", out.Item))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	payload, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, payload)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req models.RefreshTokenInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.Unauthorized("No refresh token provided."))
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, pair)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req models.RequestPasswordResetInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	result, err := h.authService.RequestPasswordReset(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	if result.ResetLink == "" {
		sendMessage(c, h.Helper, result.Message)
		return
	}
	h.Helper.SendSuccess(c, result)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	msg, err := h.authService.ResetPassword(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, user)
}

func (h *AuthHandler) UpdatePersonalInfo(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.UpdatePersonalInfoInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	out, err := h.authService.UpdatePersonalInfo(c.Request.Context(), userID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, helper.Envelope(out.Message, "user", out.Item))
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	var req models.ChangePasswordInput
	if err := h.Helper.BindJSON(c, &req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	msg, err := h.authService.ChangePassword(c.Request.Context(), userID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	sendMessage(c, h.Helper, msg)
}

func (h *AuthHandler) GetUsers(c *gin.Context) {
	users, err := h.authService.GetUsers(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, users)
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, user)
}
