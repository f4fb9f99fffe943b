package admin

import (
	"net/http"

	"github.com/showprojectts/criativoio/internal/history"
	"github.com/showprojectts/criativoio/internal/recharge"
	"github.com/showprojectts/criativoio/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Stats struct {
	Users            int   `json:"users"`
	Generations      int   `json:"generations"`
	CreditsSpent     int64 `json:"credits_spent"`
	CreditsRecharged int64 `json:"credits_recharged"`
}

type Handler struct {
	userRepo    user.Repository
	historyRepo history.Repository
	txRepo      recharge.Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		userRepo:    user.NewRepository(db),
		historyRepo: history.NewRepository(db),
		txRepo:      recharge.NewRepository(db),
	}
}

// GetStats godoc
// @Summary      Platform stats
// @Description  Aggregated usage numbers for the admin dashboard. Admin only.
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Failure      401  {object}  gin.H
// @Failure      403  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /admin/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := h.userRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	generations, err := h.historyRepo.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	spent, err := h.historyRepo.TotalCreditsSpent(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	recharged, err := h.txRepo.TotalCreditsAdded(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, Stats{
		Users:            users,
		Generations:      generations,
		CreditsSpent:     spent,
		CreditsRecharged: recharged,
	})
}
