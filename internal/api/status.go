package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status reports what the UI needs on load: whether a roster is available
// and which sheet names are expected.
// GET /api/status
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rosterPlayers": len(h.rosterMap()),
		"sourceSheet":   h.cfg.Club.SourceSheet,
		"rosterSheet":   h.cfg.Roster.Sheet,
		"sessions":      h.sessions.count(),
	})
}
