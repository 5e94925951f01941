package models

import "github.com/devdhirendra/enhanced-ns-sub000/pkg/roles"

// ProfileDetail holds the role specific fields (name, phone, company,
// address, salary, ...). Its shape is owned by the backend.
type ProfileDetail map[string]any

type User struct {
	UserID        string        `json:"user_id"`
	Email         string        `json:"email"`
	Role          roles.Role    `json:"role"`
	ProfileDetail ProfileDetail `json:"profileDetail,omitempty"`
	CreatedAt     Timestamp     `json:"createdAt,omitempty"`
	UpdatedAt     Timestamp     `json:"updatedAt,omitempty"`
}

// Name returns profileDetail.name when it is a string.
func (u User) Name() string {
	if name, ok := u.ProfileDetail["name"].(string); ok {
		return name
	}
	return ""
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool       `json:"success,omitempty"`
	Token   string     `json:"token"`
	UserID  string     `json:"user_id"`
	Role    roles.Role `json:"role"`
	Message string     `json:"message,omitempty"`
}

// RegisterRequest is the body of the role specific register calls.
type RegisterRequest struct {
	Email         string        `json:"email"`
	Password      string        `json:"password"`
	Role          roles.Role    `json:"role,omitempty"`
	ProfileDetail ProfileDetail `json:"profileDetail,omitempty"`
}
