package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medcheck/ai-symptom-checker-backend/internal/resolver"
)

// SymptomInput is the body of POST /check-symptoms. The only validation is
// that the field is present; the resolver copes with arbitrary text.
type SymptomInput struct {
	Symptoms string `json:"symptoms" binding:"required"`
}

// Handler bundles the HTTP endpoints around one shared resolver.
type Handler struct {
	Resolver *resolver.Resolver
}

func NewHandler(r *resolver.Resolver) *Handler {
	return &Handler{Resolver: r}
}

// CheckSymptoms handles POST /check-symptoms: bind the input, resolve it,
// return the record as {"diagnosis", "confidence", "recommendation"}.
func (h *Handler) CheckSymptoms(c *gin.Context) {
	var input SymptomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		requestLog(c).WithError(err).Warn("rejected symptom check payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.Resolver.Resolve(c.Request.Context(), input.Symptoms)
	if err != nil {
		requestLog(c).WithError(err).Error("symptom resolution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to classify symptoms: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Health handles GET /health. The classifier flag tells operators whether
// the zero-shot fallback is live or the service degraded to keyword-only
// matching at startup.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"classifier": h.Resolver.ClassifierReady(),
	})
}
