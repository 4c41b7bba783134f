// README: Itinerary generation handlers (JSON and PDF).
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripsmith/internal/itinerary"
)

type ItineraryHandler struct {
	composer *itinerary.Composer
	log      *zap.Logger
}

func NewItineraryHandler(composer *itinerary.Composer, log *zap.Logger) *ItineraryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ItineraryHandler{composer: composer, log: log}
}

type generateReq struct {
	Country     string   `json:"country"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	ArrivalDate string   `json:"arrivalDate"`
	// Refine enables the two-pass draft-then-refine flow.
	Refine bool `json:"refine"`
}

type generateResp struct {
	Itinerary string `json:"itinerary"`
}

func (r generateReq) toRequest() (itinerary.Request, error) {
	if r.Country == "" {
		return itinerary.Request{}, fmt.Errorf("country is required")
	}
	if r.Days <= 0 {
		return itinerary.Request{}, fmt.Errorf("days must be a positive integer")
	}
	arrival, err := time.Parse("2006-01-02", r.ArrivalDate)
	if err != nil {
		return itinerary.Request{}, fmt.Errorf("arrivalDate must be a valid YYYY-MM-DD date")
	}
	return itinerary.Request{
		Country:     r.Country,
		Days:        r.Days,
		Interests:   r.Interests,
		ArrivalDate: arrival,
	}, nil
}

// generate binds the request and runs the composer in the mode it asked
// for. No timeout wraps the completion call; only the client's disconnect
// cancels it.
func (h *ItineraryHandler) generate(c *gin.Context) (itinerary.Request, string, bool) {
	var body generateReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json: "+err.Error())
		return itinerary.Request{}, "", false
	}

	req, err := body.toRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return itinerary.Request{}, "", false
	}

	var text string
	if body.Refine {
		text, err = h.composer.GenerateRefined(c.Request.Context(), req)
	} else {
		text, err = h.composer.Generate(c.Request.Context(), req)
	}
	if err != nil {
		h.log.Error("itinerary generation failed",
			zap.String("country", req.Country),
			zap.Bool("refine", body.Refine),
			zap.Error(err))
		writeError(c, http.StatusInternalServerError, err.Error())
		return itinerary.Request{}, "", false
	}
	return req, text, true
}

// Generate handles POST /generate-itinerary.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	_, text, ok := h.generate(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, generateResp{Itinerary: text})
}

// GeneratePDF handles POST /generate-itinerary/pdf. It runs the same flow
// and returns the itinerary rendered as a PDF attachment.
func (h *ItineraryHandler) GeneratePDF(c *gin.Context) {
	req, text, ok := h.generate(c)
	if !ok {
		return
	}

	pdfBytes, err := itinerary.RenderPDF(req, text)
	if err != nil {
		h.log.Error("pdf rendering failed", zap.Error(err))
		writeError(c, http.StatusInternalServerError, "failed to render PDF")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="itinerary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
