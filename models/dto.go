package models

import "time"

type SignUpInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RequestPasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token              string `json:"token" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword    string `json:"currentPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"required"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
}

type UpdatePersonalInfoInput struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1,max=100"`
}

type AuthPayload struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type PasswordResetResult struct {
	Message   string `json:"message"`
	ResetLink string `json:"resetLink"`
}

type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

type NamedInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type EditNamedInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type StatusInput struct {
	Status ContentStatus `json:"status" validate:"required"`
}

// PageQuery is the page/pageSize pair accepted by every list.
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// ContentFilter is the filter object of the content list endpoints. Entity
// specific keys are ignored by entities that lack the column.
type ContentFilter struct {
	Search          string        `form:"search"`
	Status          ContentStatus `form:"status"`
	TagID           string        `form:"tagId"`
	TourTypeID      string        `form:"tourTypeId"`
	Location        string        `form:"location"`
	Country         string        `form:"country"`
	DateRangePreset string        `form:"dateRangePreset"`
	StartDate       *time.Time    `form:"-"`
	EndDate         *time.Time    `form:"-"`
	Page            int           `form:"page"`
	PageSize        int           `form:"pageSize"`
}

type RequestFilter struct {
	RequestType     RequestType   `form:"requestType"`
	Status          RequestStatus `form:"status"`
	DateRangePreset string        `form:"dateRangePreset"`
	StartDate       *time.Time    `form:"-"`
	EndDate         *time.Time    `form:"-"`
	Page            int           `form:"page"`
	PageSize        int           `form:"pageSize"`
}

// Page is the list envelope returned by every paginated query.
type Page[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
