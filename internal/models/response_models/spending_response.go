package response_models

import (
	"wayfare/internal/models/ai_models"
)

type SpendingResponse struct {
	Summary ai_models.SpendingSummary `json:"summary"`
}
