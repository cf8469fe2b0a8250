package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// History lists recent filter runs, newest first.
// GET /api/history?limit=20
func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	runs, err := h.store.ListFilterRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read run history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}
