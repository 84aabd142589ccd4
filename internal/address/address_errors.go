package address

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrMissingFields = apperror.New(
		apperror.CodeInvalidInput,
		"All address fields are required",
		http.StatusBadRequest,
	)

	ErrInvalidIndex = apperror.New(
		apperror.CodeNotFound,
		"No address at that position",
		http.StatusNotFound,
	)
)
