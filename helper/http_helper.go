package helper

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"travel-gateway/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	"gorm.io/gorm"
)

const (
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeValidation      = "VALIDATION_FAILED"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// ErrorResponse is the single error object returned for a failed request.
type ErrorResponse struct {
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errors  []models.FieldError `json:"errors"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	validate, trans := NewValidator()
	return &HTTPHelper{Validate: validate, Translator: trans}
}

// CodeForStatus maps an HTTP status to its symbolic error code.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeBadUserInput
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity:
		return CodeValidation
	case http.StatusTooManyRequests:
		return CodeTooManyRequests
	default:
		return CodeInternal
	}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		badRequest   models.ErrorBadRequest
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
		notFound     models.ErrorNotFound
		conflict     models.ErrorConflict
		validation   models.ErrorValidation
	)

	switch {
	case errors.As(err, &badRequest):
		return http.StatusBadRequest
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case errors.As(err, &notFound), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.As(err, &conflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the error payload for err.
func (u *HTTPHelper) NewErrorResponse(err error) (int, ErrorResponse) {
	status := u.GetStatusCode(err)
	res := ErrorResponse{
		Message: err.Error(),
		Code:    CodeForStatus(status),
		Errors:  []models.FieldError{},
	}

	var validation models.ErrorValidation
	switch {
	case errors.As(err, &validation):
		res.Message = validation.Message
		if validation.Fields != nil {
			res.Errors = validation.Fields
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		res.Message = "Record not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		res.Message = "A record with that value already exists."
	case status == http.StatusInternalServerError:
		res.Message = "Internal server error"
	}

	return status, res
}

// SendError ...
// Send the normalised error payload and abort the request.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status, res := u.NewErrorResponse(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, res)
}

// SendStatusError sends an error payload for a status raised outside the
// service layer, such as rate limiting.
func (u *HTTPHelper) SendStatusError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message: message,
		Code:    CodeForStatus(status),
		Errors:  []models.FieldError{},
	})
}

// SendSuccess ...
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated ...
func (u *HTTPHelper) SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Envelope is the {message, <entity>} shape of create and edit responses.
func Envelope(message, key string, value interface{}) gin.H {
	return gin.H{"message": message, key: value}
}

// BindJSON decodes the body into req and validates it.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return models.ErrorBadRequest{Message: "Invalid request body: " + err.Error()}
	}
	return u.ValidateStruct(req)
}

// ValidateStruct runs the validate tags of v and translates failures.
func (u *HTTPHelper) ValidateStruct(v interface{}) error {
	err := u.Validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return models.ErrorBadRequest{Message: err.Error()}
	}

	fields := make([]models.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, models.FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(u.Translator),
		})
	}
	return models.ErrorValidation{Message: "Validation failed", Fields: fields}
}

// ParseTimeQuery reads an optional timestamp query parameter. RFC 3339 and
// plain dates are accepted.
func (u *HTTPHelper) ParseTimeQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, models.BadRequestf("%s must be an RFC 3339 timestamp or a YYYY-MM-DD date", key)
}
