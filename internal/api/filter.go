package api

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/config"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/excel"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/filter"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/nickname"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/style"
)

// FilterRequest is the filter action payload. Nicknames is the raw text the
// user typed; it is re-parsed on every run.
type FilterRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Nicknames string `json:"nicknames"`
}

// PreviewNicknames parses nickname text without running the filter, so the
// UI can show what the grammar made of the input.
// POST /api/nicknames/preview
func (h *Handler) PreviewNicknames(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entries := nickname.Parse(req.Text)
	c.JSON(http.StatusOK, gin.H{
		"entries":   entries,
		"formatted": nickname.Format(entries),
	})
}

// Filter runs the transform against the session's workbook and registers a
// download for the styled result.
// POST /api/filter
func (h *Handler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, ok := h.sessions.beginProcessing(req.SessionID)
	if !ok {
		if _, exists := h.sessions.get(req.SessionID); !exists {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown session, upload the workbook again"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": "another action is already running for this session"})
		return
	}
	defer h.sessions.endProcessing(req.SessionID)

	entries := nickname.Parse(req.Nicknames)

	runID, err := h.store.CreateFilterRun(sess.filename, h.cfg.Club.SourceSheet, len(entries))
	if err != nil {
		// The run log must never block the actual filtering.
		runID = 0
	}

	result, err := filter.Classify(sess.workbook, h.cfg.Club.SourceSheet, entries, h.rosterMap(), filterConfig(h.cfg))
	if err != nil {
		h.completeRun(runID, nil, "error", err.Error())
		var notFound *model.SheetNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	styles := style.Annotate(result.Table)
	widths := style.ColumnWidths(result.Table)

	file, err := excel.Write(result.Table, styles, widths)
	if err != nil {
		h.completeRun(runID, result, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build output workbook"})
		return
	}
	defer file.Close()

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("klubb_filter_%d_%d.xlsx", time.Now().UnixNano(), os.Getpid()))
	if err := file.SaveAs(tempPath); err != nil {
		h.completeRun(runID, result, "error", err.Error())
		_ = os.Remove(tempPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write output workbook"})
		return
	}

	downloadName := filteredName(sess.filename)
	token := h.downloads.put(tempPath, downloadName, downloadTTL)

	h.completeRun(runID, result, "done", "")

	c.JSON(http.StatusOK, gin.H{
		"matched":     len(result.Matched),
		"positive":    result.PositiveCount,
		"negative":    result.NegativeCount,
		"downloadUrl": "/api/download/" + token,
		"filename":    downloadName,
	})
}

// Download serves a previously produced result file.
// GET /api/download/:token
func (h *Handler) Download(c *gin.Context) {
	token := c.Param("token")
	d, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download expired or unknown"})
		return
	}
	c.FileAttachment(d.filePath, d.name)
}

func (h *Handler) completeRun(runID int64, result *filter.Result, status, errMsg string) {
	if runID == 0 {
		return
	}
	matched, positive, negative := 0, 0, 0
	if result != nil {
		matched = len(result.Matched)
		positive = result.PositiveCount
		negative = result.NegativeCount
	}
	_ = h.store.CompleteFilterRun(runID, matched, positive, negative, status, errMsg)
}

// filteredName derives "{base}_filtered.xlsx" from the uploaded filename.
func filteredName(original string) string {
	base := filepath.Base(original)
	ext := filepath.Ext(base)
	base = strings.TrimSuffix(base, ext)
	if base == "" {
		base = "club_member_balance"
	}
	return base + "_filtered.xlsx"
}

func filterConfig(cfg *config.AppConfig) filter.Config {
	return filter.Config{
		HeaderSkipRows: cfg.Club.HeaderSkipRows,
		NicknameCol:    cfg.Club.NicknameCol,
		BalanceCol:     cfg.Club.BalanceCol,
	}
}
