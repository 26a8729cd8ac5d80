package quotaerrors

import (
	"net/http"

	"go-simpeg/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrQuotaNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave quota not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrPersistFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"quota computed but could not be saved",
		http.StatusServiceUnavailable,
	)
)
