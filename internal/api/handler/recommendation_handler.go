package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/ai"
	"github.com/wellplan/advisor-api/internal/api/validation"
	"github.com/wellplan/advisor-api/internal/domain"
	"github.com/wellplan/advisor-api/internal/langfuse"
	"github.com/wellplan/advisor-api/internal/service"
	"github.com/wellplan/advisor-api/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// RecommendationHandler handles recommendation generation and history.
type RecommendationHandler struct {
	service        service.RecommendationService
	langfuseClient langfuse.Client
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(service service.RecommendationService, langfuseClient langfuse.Client) *RecommendationHandler {
	return &RecommendationHandler{
		service:        service,
		langfuseClient: langfuseClient,
	}
}

// Generate handles POST /v1/profiles/{profileId}/recommendations
// @Summary Generate a recommendation
// @Description Run one generation attempt against the selected AI vendor and return the decoded plans.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param request body domain.GenerateRecommendationRequest true "Vendor and model selection"
// @Success 201 {object} domain.GenerateRecommendationResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 422 {object} problem.Problem "Vendor not configured"
// @Failure 429 {object} problem.Problem "Vendor rate limit hit"
// @Failure 502 {object} problem.Problem "Vendor call or decode failed"
// @Failure 504 {object} problem.Problem "Vendor call timed out"
// @Router /profiles/{profileId}/recommendations [post]
func (h *RecommendationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	var req domain.GenerateRecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	rec, err := h.service.Generate(r.Context(), profileID, &req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	response := domain.GenerateRecommendationResponse{Recommendation: *rec}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		response.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// writeGenerateError maps the AI error taxonomy onto problem responses.
func writeGenerateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Profile not found").Write(w)
	case errors.Is(err, ai.ErrNotConfigured):
		problem.UnprocessableEntity("vendor-not-configured", "Vendor Not Configured",
			"No credential is configured for the selected vendor").Write(w)
	case errors.Is(err, ai.ErrInvalidCredential):
		problem.BadGateway("invalid-credential", "Invalid Credential",
			"The vendor rejected the configured credential").Write(w)
	case errors.Is(err, ai.ErrRateLimited):
		problem.TooManyRequests("The vendor is throttling requests; wait and retry").Write(w)
	case errors.Is(err, ai.ErrTimeout):
		problem.GatewayTimeout("The vendor did not answer within the request deadline").Write(w)
	case errors.Is(err, ai.ErrParsing):
		problem.BadGateway("vendor-response-unparseable", "Unparseable Vendor Response",
			"The vendor response could not be decoded into a recommendation").Write(w)
	case errors.Is(err, ai.ErrNetwork), errors.Is(err, ai.ErrInvalidResponse), errors.Is(err, ai.ErrServer):
		problem.BadGateway("vendor-error", "Vendor Error",
			"The vendor call failed").Write(w)
	default:
		problem.InternalError("Failed to generate recommendation").Write(w)
	}
}

// List handles GET /v1/profiles/{profileId}/recommendations
// @Summary List recommendation history
// @Description List past generation attempts for a profile, newest first, with cursor pagination.
// @Tags recommendations
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param status query string false "Filter by status" Enums(PENDING,COMPLETED,FAILED)
// @Param limit query integer false "Page size" default(20) maximum(100)
// @Param cursor query string false "Cursor from a previous page"
// @Success 200 {object} domain.RecommendationListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/recommendations [get]
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").Write(w)
		return
	}

	filter := domain.RecommendationFilter{
		Limit:  parseIntParam(r, "limit", 0),
		Cursor: r.URL.Query().Get("cursor"),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		switch domain.RecommendationStatus(status) {
		case domain.StatusPending, domain.StatusCompleted, domain.StatusFailed:
			filter.Status = domain.RecommendationStatus(status)
		default:
			problem.BadRequest("status must be one of PENDING, COMPLETED, FAILED").Write(w)
			return
		}
	}

	result, err := h.service.List(r.Context(), profileID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to list recommendations").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetByID handles GET /v1/recommendations/{recommendationId}
// @Summary Get a recommendation
// @Description Fetch one stored generation attempt, including the decoded plans when completed.
// @Tags recommendations
// @Produce json
// @Param recommendationId path string true "Recommendation ID" format(uuid)
// @Success 200 {object} domain.Recommendation
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /recommendations/{recommendationId} [get]
func (h *RecommendationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	recID, err := uuid.Parse(chi.URLParam(r, "recommendationId"))
	if err != nil {
		problem.BadRequest("Invalid recommendation ID format").Write(w)
		return
	}

	rec, err := h.service.GetByID(r.Context(), recID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Recommendation not found").Write(w)
			return
		}
		problem.InternalError("Failed to get recommendation").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// FeedbackRequest is the request body for recommendation feedback.
// @Description User rating for a generated recommendation.
type FeedbackRequest struct {
	// Trace ID from the generate response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The workout plan fits my schedule"`
}

// PostFeedback handles POST /v1/recommendations/{recommendationId}/feedback
// @Summary Submit feedback on a recommendation
// @Description Submit a user rating and optional comment for a previous generation.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param recommendationId path string true "Recommendation ID" format(uuid)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /recommendations/{recommendationId}/feedback [post]
func (h *RecommendationHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "recommendationId")); err != nil {
		problem.BadRequest("Invalid recommendation ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
