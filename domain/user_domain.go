package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "gardener registered successfully"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetMe    = "profile retrieved successfully"

	MessageFailedRegister = "failed to register gardener"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve profile"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrCredentialsWrong     = errors.New("email or password is wrong")
	ErrPasswordHashingError = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone" validate:"omitempty,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// LoginResponse is intentionally just the token; the mobile app reads it
	// from the envelope's "data" field and stores it as an opaque string.
	LoginResponse = string

	MeResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone,omitempty"`
		Role  string `json:"role"`
	}
)
