package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/excel"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/roster"
)

// Upload receives the balance workbook and opens a session around it.
// POST /api/upload
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file in upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	wb, err := excel.Load(f)
	if err != nil {
		var readErr *model.FileReadError
		if errors.As(err, &readErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a readable spreadsheet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sess := h.sessions.put(fileHeader.Filename, wb)

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.id,
		"filename":  sess.filename,
		"sheets":    wb.SheetNames(),
	})
}

// UploadRoster receives the reference workbook and rebuilds the name map.
// POST /api/roster
func (h *Handler) UploadRoster(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file in upload"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open upload"})
		return
	}
	defer f.Close()

	wb, err := excel.Load(f)
	if err != nil {
		var readErr *model.FileReadError
		if errors.As(err, &readErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is not a readable spreadsheet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	names, err := roster.Build(wb, h.cfg.Roster.Sheet)
	if err != nil {
		var notFound *model.SheetNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": notFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setRoster(names)

	c.JSON(http.StatusOK, gin.H{
		"players": len(names),
	})
}
