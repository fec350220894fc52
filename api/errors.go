package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors to a status. Degraded pricing never gets
// here: it is a successful response carrying warnings.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsBlocking(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrOptionNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrServiceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSessionBusy):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("[api] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
