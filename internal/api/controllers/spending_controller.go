package controllers

import (
	"github.com/gin-gonic/gin"

	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type SpendingController struct {
	tripService services.TripServiceInterface
}

func NewSpendingController(tripService services.TripServiceInterface) *SpendingController {
	return &SpendingController{
		tripService: tripService,
	}
}

func (s *SpendingController) GetSpending(c *gin.Context) {
	summary, err := s.tripService.Summarize(c.Request.Context(), c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Spending summary generated successfully")
}
