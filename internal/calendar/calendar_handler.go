package calendar

import (
	"net/http"
	"strconv"

	"go-simpeg/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	set *HolidaySet
}

func NewHandler(set *HolidaySet) *Handler {
	return &Handler{set: set}
}

// ListHolidays mengembalikan tabel libur nasional dan cuti bersama satu tahun.
func (h *Handler) ListHolidays(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tahun tidak valid", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"year":     year,
		"holidays": h.set.Entries(year),
	}, nil)
}
