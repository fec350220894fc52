package api

import (
	"net/http"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/location"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the fixed price tables and the departure resolver
// used by the estimate form.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/catalog/treatments", h.treatments)
	router.GET("/catalog/accommodation", h.accommodation)
	router.GET("/airports/resolve", h.resolve)
}

func (h *CatalogHandler) treatments(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Treatments())
}

func (h *CatalogHandler) accommodation(c *gin.Context) {
	c.JSON(http.StatusOK, domain.AccommodationTiers())
}

func (h *CatalogHandler) resolve(c *gin.Context) {
	q := c.Query("q")
	code, err := location.Resolve(q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": q, "code": code})
}
