// internal/app/features/authapi/types.go
package authapi

import "github.com/dalemusser/foodhub/internal/domain/models"

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type upvoteRequest struct {
	UserID string `json:"userID"`
}

// authResponse is the register/login payload. The embedded user is the
// full stored document, hash included; existing clients rely on that shape
// (see DESIGN.md).
type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
