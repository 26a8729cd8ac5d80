package autherrors

import (
	"net/http"

	"go-simpeg/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New("INVALID_CREDENTIALS", "Email atau kata sandi salah", http.StatusUnauthorized)
	ErrInvalidToken       = apperror.New("INVALID_TOKEN", "Token tidak valid", http.StatusUnauthorized)
	ErrTokenExpired       = apperror.New("TOKEN_EXPIRED", "Token sudah kedaluwarsa", http.StatusUnauthorized)
	ErrInvalidRefreshToken = apperror.New("INVALID_REFRESH_TOKEN", "Refresh token tidak valid", http.StatusUnauthorized)
	ErrInvalidUserID      = apperror.New("INVALID_USER_ID", "User ID tidak valid", http.StatusBadRequest)
	ErrUserNotFound       = apperror.New("USER_NOT_FOUND", "User tidak ditemukan", http.StatusNotFound)
	ErrUserInactive       = apperror.New("USER_INACTIVE", "Akun dinonaktifkan", http.StatusForbidden)
	ErrForbidden          = apperror.New("FORBIDDEN", "Anda tidak memiliki akses", http.StatusForbidden)
	ErrEmailAlreadyRegistered = apperror.New("EMAIL_ALREADY_REGISTERED", "Email sudah terdaftar", http.StatusConflict)
	ErrTokenGenerationFailed  = apperror.New("TOKEN_GENERATION_FAILED", "Gagal membuat token", http.StatusInternalServerError)
)
