package api

import (
	"net/http"

	"github.com/Domenick1991/dentaltrip/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	service catalog.CatalogUseCase
}

func NewServiceHandler(service catalog.CatalogUseCase) *ServiceHandler {
	return &ServiceHandler{service: service}
}

func (h *ServiceHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *ServiceHandler) list(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) create(c *gin.Context) {
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
