package model

import (
	"github.com/google/uuid"
)

// User is the session identity: the role-bearing record of whoever is
// currently authenticated. The role never changes without a fresh login.
type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
	Avatar string    `json:"avatar,omitempty"`
}

// Credential is one row of the fixed credential table. The password is
// held in memory only and never serialized.
type Credential struct {
	User
	Password string `json:"-"`
}

// LoginRequest represents login parameters
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
