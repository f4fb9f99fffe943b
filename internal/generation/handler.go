package generation

import (
	"errors"
	"net/http"

	"github.com/showprojectts/criativoio/internal/auth"
	"github.com/showprojectts/criativoio/internal/provider"

	"github.com/gin-gonic/gin"
)

type GenerateRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	ModelID     string `json:"model_id" binding:"required"`
	CreditsCost int64  `json:"credits_cost" binding:"required,gt=0"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Generate godoc
// @Summary      Generate a creative asset
// @Description  Charges the prepaid balance for one AI generation. Returns 200 with the artifact for synchronous providers, 202 with a job id for asynchronous ones.
// @Tags         generations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateRequest  true  "Generation request"
// @Success      200      {object}  gin.H
// @Success      202      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      403      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Failure      502      {object}  gin.H
// @Router       /generate [post]
func (h *Handler) Generate(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields (prompt, model_id, credits_cost)"})
		return
	}

	outcome, err := h.service.Generate(c.Request.Context(), userID, Request{
		Prompt:      req.Prompt,
		ModelID:     req.ModelID,
		CreditsCost: req.CreditsCost,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInsufficientCredits):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient credits for this operation"})
		case errors.Is(err, ErrProvider):
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI generation failed"})
		case errors.Is(err, ErrRecording):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if outcome.Result.Kind == provider.KindQueued {
		c.JSON(http.StatusAccepted, gin.H{
			"message": "generation started",
			"job_id":  outcome.Result.JobID,
			"status":  outcome.Record.Status,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "creative generated",
		"result_url":        outcome.Result.ArtifactURL,
		"generation_id":     outcome.Record.ID,
		"remaining_credits": outcome.Balance,
	})
}
