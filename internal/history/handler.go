package history

import (
	"net/http"
	"strconv"

	"github.com/showprojectts/criativoio/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// ListHistory godoc
// @Summary      Generation history
// @Description  Returns the authenticated user's generation attempts, newest first.
// @Tags         generations
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   GenerationRecord
// @Failure      401     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /history [get]
func (h *Handler) ListHistory(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.repo.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	if records == nil {
		records = []GenerationRecord{}
	}
	c.JSON(http.StatusOK, records)
}
