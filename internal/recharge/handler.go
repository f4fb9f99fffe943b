package recharge

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/showprojectts/criativoio/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Recharge godoc
// @Summary      Apply a confirmed credit top-up
// @Description  Trusted confirmation receiver: credits the user's balance and appends an audit log entry. Not a payment gateway.
// @Tags         credits
// @Accept       json
// @Produce      json
// @Param        request  body      RechargeRequest  true  "Recharge confirmation"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /recharge [post]
func (h *Handler) Recharge(c *gin.Context) {
	var req RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid parameters. Required: user_id (string), tokens_to_add (positive number)"})
		return
	}

	newBalance, err := h.service.Recharge(c.Request.Context(), req.UserID, req.TokensToAdd)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update credit balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "credits added",
		"added":   req.TokensToAdd,
		"balance": newBalance,
	})
}

// ListTransactions godoc
// @Summary      Recharge audit trail
// @Description  Returns the authenticated user's transaction log entries, newest first.
// @Tags         credits
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {array}   TransactionLogEntry
// @Failure      401     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /credits/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.service.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}

	if entries == nil {
		entries = []TransactionLogEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
