package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/dentaltrip/internal/domain"
	"github.com/Domenick1991/dentaltrip/internal/estimate"
	"github.com/Domenick1991/dentaltrip/internal/report"
	"github.com/Domenick1991/dentaltrip/internal/service/estimator"
	"github.com/gin-gonic/gin"
)

type EstimateHandler struct {
	service estimator.EstimateUseCase
	now     func() time.Time
}

type submitEstimateRequest struct {
	Departure     string `json:"departure"`
	OutboundDate  string `json:"outbound_date"`
	ReturnDate    string `json:"return_date"`
	Treatment     string `json:"treatment"`
	Accommodation string `json:"accommodation"`
}

type changeDatesRequest struct {
	OutboundDate string `json:"outbound_date" binding:"omitempty,isodate"`
	ReturnDate   string `json:"return_date" binding:"omitempty,isodate"`
}

type selectFlightRequest struct {
	Index *int `json:"index" binding:"required,gte=0"`
}

// selectHotelRequest takes either a labelled pick or a candidate index.
type selectHotelRequest struct {
	Pick  domain.HotelPickKind `json:"pick" binding:"omitempty,oneof=cheapest top_rated best_value"`
	Index *int                 `json:"index" binding:"omitempty,gte=0"`
}

type valueRequest struct {
	Value string `json:"value" binding:"required"`
}

type estimateResponse struct {
	*estimate.Session
	Warnings []string `json:"warnings"`
}

func NewEstimateHandler(service estimator.EstimateUseCase) *EstimateHandler {
	return &EstimateHandler{service: service, now: time.Now}
}

func (h *EstimateHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.submit)
	router.GET("/:id", h.get)
	router.GET("/:id/pdf", h.pdf)
	router.POST("/:id/calculate", h.recalculate)
	router.PUT("/:id/dates", h.changeDates)
	router.PUT("/:id/flight", h.selectFlight)
	router.PUT("/:id/hotel", h.selectHotel)
	router.PUT("/:id/treatment", h.changeTreatment)
	router.PUT("/:id/accommodation", h.changeAccommodation)
}

func (h *EstimateHandler) submit(c *gin.Context) {
	var req submitEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.service.Submit(c.Request.Context(), domain.TripRequest{
		Departure:     req.Departure,
		OutboundDate:  req.OutboundDate,
		ReturnDate:    req.ReturnDate,
		Treatment:     req.Treatment,
		Accommodation: req.Accommodation,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEstimateResponse(sess))
}

func (h *EstimateHandler) get(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, sess, err)
}

func (h *EstimateHandler) recalculate(c *gin.Context) {
	sess, err := h.service.Recalculate(c.Request.Context(), c.Param("id"))
	h.respond(c, sess, err)
}

func (h *EstimateHandler) changeDates(c *gin.Context) {
	var req changeDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.ChangeDates(c.Request.Context(), c.Param("id"), req.OutboundDate, req.ReturnDate)
	h.respond(c, sess, err)
}

func (h *EstimateHandler) selectFlight(c *gin.Context) {
	var req selectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.SelectFlight(c.Request.Context(), c.Param("id"), *req.Index)
	h.respond(c, sess, err)
}

func (h *EstimateHandler) selectHotel(c *gin.Context) {
	var req selectHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		sess *estimate.Session
		err  error
	)
	switch {
	case req.Pick != "":
		sess, err = h.service.SelectHotelPick(c.Request.Context(), c.Param("id"), req.Pick)
	case req.Index != nil:
		sess, err = h.service.SelectHotelIndex(c.Request.Context(), c.Param("id"), *req.Index)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either pick or index is required"})
		return
	}
	h.respond(c, sess, err)
}

func (h *EstimateHandler) changeTreatment(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.ChangeTreatment(c.Request.Context(), c.Param("id"), req.Value)
	h.respond(c, sess, err)
}

func (h *EstimateHandler) changeAccommodation(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, err := h.service.ChangeAccommodation(c.Request.Context(), c.Param("id"), req.Value)
	h.respond(c, sess, err)
}

func (h *EstimateHandler) pdf(c *gin.Context) {
	sess, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	data, err := report.EstimatePDF(sess, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=dental-trip-estimate-%s.pdf", sess.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *EstimateHandler) respond(c *gin.Context, sess *estimate.Session, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEstimateResponse(sess))
}

func newEstimateResponse(sess *estimate.Session) estimateResponse {
	warnings := sess.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	return estimateResponse{Session: sess, Warnings: warnings}
}
