package cart

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid cart request",
		http.StatusBadRequest,
	)

	ErrSizeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please select a size before adding to cart",
		http.StatusBadRequest,
	)
)
