package catalog

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrRefreshFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to refresh product catalog",
		http.StatusBadGateway,
	)

	ErrLookupFailed = apperror.New(
		apperror.CodeUpstream,
		"Product lookup is unavailable right now",
		http.StatusBadGateway,
	)
)
