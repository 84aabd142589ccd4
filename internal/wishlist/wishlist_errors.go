package wishlist

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidInput = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid wishlist request",
		http.StatusBadRequest,
	)

	ErrNotInWishlist = apperror.New(
		apperror.CodeNotFound,
		"Product is not in the wishlist",
		http.StatusNotFound,
	)
)
