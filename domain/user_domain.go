package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetUser        = "user retrieved successfully"
	MessageSuccessUpdatePassword = "password updated successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetUser        = "failed to retrieve user"
	MessageFailedUpdatePassword = "failed to update password"
	MessageFailedUploadAvatar   = "failed to upload avatar"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrPasswordNotMatch       = errors.New("old password does not match")
)

type (
	RegisterRequest struct {
		Name         string `json:"name" validate:"required"`
		Email        string `json:"email" validate:"required,email"`
		Password     string `json:"password" validate:"required,min=6"`
		Organization string `json:"organization" validate:"required"`
	}

	RegisterResponse struct {
		Token string `json:"token"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Organization string    `json:"organization"`
		AvatarURL    string    `json:"avatar_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	UpdatePasswordRequest struct {
		OldPassword string `json:"old_password" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}
)
