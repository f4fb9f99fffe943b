package notifier

import (
	"io"
	"net/http"

	"github.com/showprojectts/criativoio/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	notifier *Notifier
}

func NewHandler(n *Notifier) *Handler {
	return &Handler{notifier: n}
}

// StreamCredits godoc
// @Summary      Realtime balance stream
// @Description  Server-sent events delivering {"balance": n} whenever the user's balance changes. Delivery is at-most-once; clients reconcile via GET /credits.
// @Tags         credits
// @Security     BearerAuth
// @Produce      text/event-stream
// @Success      200  {string}  string
// @Failure      401  {object}  gin.H
// @Router       /realtime/credits [get]
func (h *Handler) StreamCredits(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	events, cancel := h.notifier.Subscribe(userID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	// No snapshot is sent up front: the client shows an unknown state
	// until the first event or its own pull resolves the value.
	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("balance", event)
			return true
		}
	})
}
