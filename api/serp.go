package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/Domenick1991/dentaltrip/internal/serp"
	"github.com/gin-gonic/gin"
)

type Forwarder interface {
	Forward(ctx context.Context, query url.Values) (*serp.Response, error)
}

// SerpProxyHandler lets the browser query the search provider without
// holding the API key.
type SerpProxyHandler struct {
	client Forwarder
}

func NewSerpProxyHandler(client Forwarder) *SerpProxyHandler {
	return &SerpProxyHandler{client: client}
}

func (h *SerpProxyHandler) Register(router *gin.RouterGroup) {
	router.Any("/search.json", h.search)
}

func (h *SerpProxyHandler) search(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Header("Allow", http.MethodGet)
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}

	resp, err := h.client.Forward(c.Request.Context(), c.Request.URL.Query())
	if errors.Is(err, serp.ErrMissingAPIKey) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing SERPAPI_KEY on server"})
		return
	}
	if err != nil {
		log.Printf("[serp] proxy failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SerpApi proxy failed", "details": err.Error()})
		return
	}

	if json.Valid(resp.Body) {
		c.Data(resp.StatusCode, "application/json; charset=utf-8", resp.Body)
		return
	}
	c.Data(resp.StatusCode, "text/plain; charset=utf-8", resp.Body)
}
