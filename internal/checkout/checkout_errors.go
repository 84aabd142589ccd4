package checkout

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrNotAuthenticated = apperror.New(
		apperror.CodeUnauthorized,
		"Please login to place an order",
		http.StatusUnauthorized,
	)

	ErrNoAddresses = apperror.New(
		apperror.CodeInvalidInput,
		"Please add a delivery address first",
		http.StatusBadRequest,
	)

	ErrNoAddressSelected = apperror.New(
		apperror.CodeInvalidInput,
		"Please select a delivery address",
		http.StatusBadRequest,
	)

	ErrInvalidAddress = apperror.New(
		apperror.CodeInvalidInput,
		"Selected address does not exist",
		http.StatusBadRequest,
	)

	ErrSubmitInFlight = apperror.New(
		apperror.CodeConflict,
		"An order is already being placed",
		http.StatusConflict,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeUpstream,
		"Order could not be placed, please try again",
		http.StatusBadGateway,
	)

	ErrHistoryFailed = apperror.New(
		apperror.CodeUpstream,
		"Order history is unavailable right now",
		http.StatusBadGateway,
	)
)
