package dto

import "balanceai/internal/repository/models"

// UserResponse represents a user in the API response
type UserResponse struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// CreateUserRequest is the request body for registering a user
type CreateUserRequest struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateUserRequest carries the mutable user fields; nil fields stay unchanged
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

// UserSettingsResponse represents a user's preferences in the API response
type UserSettingsResponse struct {
	ID                   int64  `json:"id"`
	UserID               int64  `json:"userId"`
	Theme                string `json:"theme"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	SMSEnabled           bool   `json:"smsEnabled"`
	EmailEnabled         bool   `json:"emailEnabled"`
	UpdatedAt            string `json:"updatedAt"`
}

// CreateUserSettingsRequest is the request body for creating user settings.
// Unset booleans default to enabled except SMS.
type CreateUserSettingsRequest struct {
	UserID               int64   `json:"userId"`
	Theme                *string `json:"theme"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	SMSEnabled           *bool   `json:"smsEnabled"`
	EmailEnabled         *bool   `json:"emailEnabled"`
}

// UpdateUserSettingsRequest carries the mutable settings fields
type UpdateUserSettingsRequest struct {
	Theme                *string `json:"theme"`
	NotificationsEnabled *bool   `json:"notificationsEnabled"`
	SMSEnabled           *bool   `json:"smsEnabled"`
	EmailEnabled         *bool   `json:"emailEnabled"`
}

// NewUserResponse maps a user row to its API view.
func NewUserResponse(m *models.User) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		AvatarURL: nullableString(m.AvatarURL),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewUserResponses maps a slice of user rows to their API views.
func NewUserResponses(rows []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewUserResponse(&rows[i]))
	}
	return out
}

// NewUserSettingsResponse maps a settings row to its API view.
func NewUserSettingsResponse(m *models.UserSettings) UserSettingsResponse {
	return UserSettingsResponse{
		ID:                   m.ID,
		UserID:               m.UserID,
		Theme:                m.Theme,
		NotificationsEnabled: m.NotificationsEnabled,
		SMSEnabled:           m.SMSEnabled,
		EmailEnabled:         m.EmailEnabled,
		UpdatedAt:            m.UpdatedAt,
	}
}

// NewUserSettingsResponses maps a slice of settings rows to their API views.
func NewUserSettingsResponses(rows []models.UserSettings) []UserSettingsResponse {
	out := make([]UserSettingsResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewUserSettingsResponse(&rows[i]))
	}
	return out
}
