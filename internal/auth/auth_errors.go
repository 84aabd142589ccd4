package auth

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"An email address is required",
		http.StatusBadRequest,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to create session token",
		http.StatusInternalServerError,
	)
)
