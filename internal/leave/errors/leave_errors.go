package leaveerrors

import (
	"net/http"

	"go-simpeg/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrMissingEndOrDuration = apperror.New(
		apperror.CodeInvalidInput,
		"either end_date or duration_days is required",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusBadRequest,
	)
	ErrRecordLocked = apperror.New(
		apperror.CodeInvalidState,
		"only pending leave can be edited",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection_reason is required when rejecting",
		http.StatusBadRequest,
	)
	ErrDurationExceedsMax = apperror.New(
		apperror.CodePolicyViolation,
		"duration exceeds the maximum for this leave type",
		http.StatusUnprocessableEntity,
	)
	ErrServiceYearsNotMet = apperror.New(
		apperror.CodePolicyViolation,
		"employee has not met the minimum service years for this leave type",
		http.StatusUnprocessableEntity,
	)
	ErrBigLeaveAlreadyTaken = apperror.New(
		apperror.CodePolicyViolation,
		"big leave already taken this year",
		http.StatusUnprocessableEntity,
	)
	ErrAnnualQuotaExceeded = apperror.New(
		apperror.CodePolicyViolation,
		"requested duration exceeds the available annual quota",
		http.StatusUnprocessableEntity,
	)
)
