package handlers

import (
	"errors"
	"net/http"
	"strings"

	fastighetRepo "fritidsbo/database/repository/fastighet"
	"fritidsbo/models"
	"fritidsbo/services/fastighet"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FastighetHandler exposes the property catalog and its image gallery.
type FastighetHandler struct {
	Service fastighet.FastighetService
	Logger  *zap.Logger
}

// NewFastighetHandler constructs a FastighetHandler.
func NewFastighetHandler(svc fastighet.FastighetService, logger *zap.Logger) *FastighetHandler {
	return &FastighetHandler{Service: svc, Logger: logger}
}

// GetAllHandler handles GET /api/fastigheter.
func (h *FastighetHandler) GetAllHandler(c *gin.Context) {
	fastigheter, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list fastigheter", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kunde inte hämta fastigheter från databasen"})
		return
	}
	c.JSON(http.StatusOK, fastigheter)
}

// GetByIDHandler handles GET /api/fastigheter/:id.
func (h *FastighetHandler) GetByIDHandler(c *gin.Context) {
	id := c.Param("id")
	f, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, fastighetRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fastigheten hittades inte"})
			return
		}
		h.Logger.Error("failed to fetch fastighet", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Kunde inte hämta fastigheten från databasen"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateHandler handles POST /api/fastigheter.
func (h *FastighetHandler) CreateHandler(c *gin.Context) {
	var f models.Fastighet
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltig begäran: " + err.Error()})
		return
	}
	if strings.TrimSpace(f.Namn) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fastighetens namn måste anges"})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), &f)
	if err != nil {
		h.Logger.Error("failed to create fastighet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid skapande av fastighet"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PUT /api/fastigheter/:id.
func (h *FastighetHandler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")
	var f models.Fastighet
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltig begäran: " + err.Error()})
		return
	}
	f.ID = id // The path is authoritative.

	updated, err := h.Service.Update(c.Request.Context(), &f)
	if err != nil {
		if errors.Is(err, fastighetRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fastigheten hittades inte"})
			return
		}
		h.Logger.Error("failed to update fastighet", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid uppdatering av fastighet"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler handles DELETE /api/fastigheter/:id. Reservations and
// images for the property are removed as well.
func (h *FastighetHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, fastighetRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fastigheten hittades inte"})
			return
		}
		h.Logger.Error("failed to delete fastighet", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid borttagning av fastighet"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBilderHandler handles GET /api/bilder with an optional fastighetId filter.
func (h *FastighetHandler) ListBilderHandler(c *gin.Context) {
	bilder, err := h.Service.ListBilder(c.Request.Context(), c.Query("fastighetId"))
	if err != nil {
		h.Logger.Error("failed to list bilder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid hämtning av bilder"})
		return
	}
	c.JSON(http.StatusOK, bilder)
}

// AddBildHandler handles POST /api/bilder.
func (h *FastighetHandler) AddBildHandler(c *gin.Context) {
	var b models.Bild
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ogiltig begäran: " + err.Error()})
		return
	}
	if strings.TrimSpace(b.FastighetID) == "" || strings.TrimSpace(b.ImageURL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fastighetId och imageURL måste anges"})
		return
	}

	created, err := h.Service.AddBild(c.Request.Context(), &b)
	if err != nil {
		h.Logger.Error("failed to add bild", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Något gick fel vid uppladdning av bild"})
		return
	}
	c.JSON(http.StatusCreated, created)
}
