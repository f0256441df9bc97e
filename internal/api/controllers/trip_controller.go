package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}

	result, err := t.tripService.CreateTrip(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip created successfully")
}

func (t *TripController) GetTrip(c *gin.Context) {
	result, err := t.tripService.GetTrip(c.Param("tripId"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Trip fetched successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Param("tripId"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

func (t *TripController) AddActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity payload")
		return
	}

	activity, err := t.tripService.AddActivity(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity added successfully")
}

func (t *TripController) UpdateActivity(c *gin.Context) {
	var req request_models.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity payload")
		return
	}

	activity, err := t.tripService.UpdateActivity(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), c.Param("activityId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

func (t *TripController) DeleteActivity(c *gin.Context) {
	err := t.tripService.DeleteActivity(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}

func (t *TripController) UpdateDayNotes(c *gin.Context) {
	var req request_models.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid notes payload")
		return
	}

	err := t.tripService.UpdateDayNotes(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Day notes updated successfully")
}

func (t *TripController) GetActivityMapLink(c *gin.Context) {
	link, err := t.tripService.ActivityMapLink(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"map_url": link}, "Map link resolved successfully")
}

func (t *TripController) SuggestAlternative(c *gin.Context) {
	activity, err := t.tripService.SuggestAlternative(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Alternative suggested successfully")
}

func (t *TripController) UndoSuggestion(c *gin.Context) {
	activity, err := t.tripService.UndoSuggestion(c.Param("tripId"), c.GetString("user_id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Previous activity restored")
}

func (t *TripController) ShareTrip(c *gin.Context) {
	var req request_models.ShareTripRequest
	// Body is optional; an empty body means the default TTL.
	_ = c.ShouldBindJSON(&req)

	link, err := t.tripService.ShareTrip(c.Param("tripId"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, link, "Share link created successfully")
}

func (t *TripController) GetShared(c *gin.Context) {
	result, err := t.tripService.ResolveShare(c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Shared trip fetched successfully")
}
