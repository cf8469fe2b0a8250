// Package api exposes the filter tool over a small local JSON API: upload a
// balance workbook, paste nicknames, run the filter, download the styled
// result.
package api

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/config"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/excel"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/service/roster"
	"github.com/Gustavowagen/sammenknukket-maskin/internal/store"
)

const (
	sessionTTL  = 2 * time.Hour
	downloadTTL = 10 * time.Minute
)

// Handler wires the API routes to the transform core.
type Handler struct {
	cfg       *config.AppConfig
	store     *store.Store
	sessions  *sessionStore
	downloads *downloadStore

	rosterMu sync.RWMutex
	roster   model.NameMap
}

// NewHandler creates the API handler. The roster starts empty; call
// LoadRosterFromPath or upload one via the API.
func NewHandler(cfg *config.AppConfig, st *store.Store) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     st,
		sessions:  newSessionStore(sessionTTL),
		downloads: newDownloadStore(),
		roster:    model.NameMap{},
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.Status)

	router.POST("/upload", h.Upload)
	router.POST("/roster", h.UploadRoster)
	router.POST("/nicknames/preview", h.PreviewNicknames)
	router.POST("/filter", h.Filter)
	router.GET("/download/:token", h.Download)

	router.GET("/history", h.History)
}

// LoadRosterFromPath loads the reference workbook from disk, typically at
// startup from the configured roster path.
func (h *Handler) LoadRosterFromPath(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open roster workbook: %w", err)
	}
	defer f.Close()

	wb, err := excel.Load(f)
	if err != nil {
		return err
	}

	names, err := roster.Build(wb, h.cfg.Roster.Sheet)
	if err != nil {
		return err
	}

	h.setRoster(names)
	return nil
}

func (h *Handler) setRoster(names model.NameMap) {
	h.rosterMu.Lock()
	defer h.rosterMu.Unlock()
	h.roster = names
}

func (h *Handler) rosterMap() model.NameMap {
	h.rosterMu.RLock()
	defer h.rosterMu.RUnlock()
	return h.roster
}
