package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	catalogRepo "salonify/database/repository/catalog"
	"salonify/models"
)

type stubCatalog struct {
	services []models.Service
	listErr  error
}

func (s *stubCatalog) GetService(_ context.Context, id string) (*models.Service, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			out := svc
			return &out, nil
		}
	}
	return nil, catalogRepo.ErrServiceNotFound
}

func (s *stubCatalog) ListServices(context.Context) ([]models.Service, error) {
	return s.services, s.listErr
}

func (s *stubCatalog) GetProfessional(_ context.Context, id string) (*models.Professional, error) {
	return nil, catalogRepo.ErrProfessionalNotFound
}

func (s *stubCatalog) ListProfessionals(context.Context) ([]models.Professional, error) {
	return nil, nil
}

func (s *stubCatalog) GetClient(_ context.Context, id string) (*models.Client, error) {
	return nil, catalogRepo.ErrClientNotFound
}

func newCatalogRouter(repo catalogRepo.CatalogRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCatalogHandler(repo, nil)
	r.GET("/api/catalog/services", h.ListServices)
	r.GET("/api/catalog/services/:id", h.GetService)
	r.GET("/api/catalog/professionals/:id", h.GetProfessional)
	return r
}

func TestListServices(t *testing.T) {
	router := newCatalogRouter(&stubCatalog{
		services: []models.Service{{ID: "cut", Name: "Haircut", Price: 50, Active: true}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/services", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Haircut")
}

func TestGetService_NotFound(t *testing.T) {
	router := newCatalogRouter(&stubCatalog{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/services/ghost", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfessional_NotFound(t *testing.T) {
	router := newCatalogRouter(&stubCatalog{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/professionals/ghost", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
}
