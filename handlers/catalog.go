// File: handlers/catalog.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	catalogRepo "salonify/database/repository/catalog"
	"salonify/models"
	"salonify/utils"
)

const (
	servicesCacheKey      = "catalog:services"
	professionalsCacheKey = "catalog:professionals"
	catalogCacheTTL       = 5 * time.Minute
)

// CatalogHandler serves the read-only service and professional catalog
// that booking clients browse before picking a slot. List responses are
// cached in redis; a nil cache client disables caching.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Cache   *redis.Client
}

func NewCatalogHandler(catalog catalogRepo.CatalogRepository, cache *redis.Client) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Cache: cache}
}

func (h *CatalogHandler) cachedGet(c *gin.Context, key string, out interface{}) bool {
	if h.Cache == nil {
		return false
	}
	cached, err := h.Cache.Get(c.Request.Context(), key).Result()
	if err != nil || cached == "" {
		return false
	}
	return json.Unmarshal([]byte(cached), out) == nil
}

func (h *CatalogHandler) cacheSet(c *gin.Context, key string, value interface{}) {
	if h.Cache == nil {
		return
	}
	bytes, err := json.Marshal(value)
	if err == nil {
		h.Cache.Set(c.Request.Context(), key, bytes, catalogCacheTTL)
	}
}

// ListServices returns all active services.
// GET /api/catalog/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if h.cachedGet(c, servicesCacheKey, &services) {
		c.JSON(http.StatusOK, gin.H{"services": services})
		return
	}

	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services", err.Error())
		return
	}
	h.cacheSet(c, servicesCacheKey, services)
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService returns one service by id.
// GET /api/catalog/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.Catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service", err.Error())
		return
	}
	c.JSON(http.StatusOK, service)
}

// ListProfessionals returns all active professionals.
// GET /api/catalog/professionals
func (h *CatalogHandler) ListProfessionals(c *gin.Context) {
	var pros []models.Professional
	if h.cachedGet(c, professionalsCacheKey, &pros) {
		c.JSON(http.StatusOK, gin.H{"professionals": pros})
		return
	}

	pros, err := h.Catalog.ListProfessionals(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load professionals", err.Error())
		return
	}
	h.cacheSet(c, professionalsCacheKey, pros)
	c.JSON(http.StatusOK, gin.H{"professionals": pros})
}

// GetProfessional returns one professional by id.
// GET /api/catalog/professionals/:id
func (h *CatalogHandler) GetProfessional(c *gin.Context) {
	pro, err := h.Catalog.GetProfessional(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			utils.JSONError(c, http.StatusNotFound, "professional not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load professional", err.Error())
		return
	}
	c.JSON(http.StatusOK, pro)
}
