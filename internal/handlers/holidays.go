package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omnical-dev/omnical/internal/services"
)

type HolidayHandler struct {
	holidays *services.HolidayService
}

func NewHolidayHandler(holidays *services.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidays: holidays}
}

// GetHolidays returns the holidays for ?countryCode=<cc>&year=<yyyy>.
func (h *HolidayHandler) GetHolidays(ctx *gin.Context) {
	countryCode := ctx.Query("countryCode")

	if countryCode == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "countryCode query parameter is required"})
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}

	holidays, err := h.holidays.Holidays(ctx.Request.Context(), countryCode, year)

	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, holidays)
}
