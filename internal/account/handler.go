package account

import (
	"net/http"

	"github.com/showprojectts/criativoio/internal/auth"
	"github.com/showprojectts/criativoio/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// DeleteAccount godoc
// @Summary      Permanently delete the account
// @Description  Removes generations, credits and transaction log rows, then revokes the identity. Fails hard only when revocation fails.
// @Tags         account
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Failure      401  {object}  gin.H
// @Failure      405  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /account [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.Purge(c.Request.Context(), userID); err != nil {
		metrics.RecordPurge("failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Critical failure revoking identity"})
		return
	}

	metrics.RecordPurge("completed")
	c.JSON(http.StatusOK, gin.H{"message": "account permanently deleted"})
}
