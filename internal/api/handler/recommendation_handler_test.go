package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/ai"
	"github.com/wellplan/advisor-api/internal/domain"
)

func newRecommendationRequest(t *testing.T, method, path, body string, params map[string]string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	return httptest.NewRecorder(), req
}

func TestRecommendationHandler_Generate(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		body           string
		serviceErr     error
		wantStatusCode int
	}{
		{
			name:           "valid request",
			profileID:      profileID.String(),
			body:           `{"vendor": "anthropic"}`,
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid profile id",
			profileID:      "abc",
			body:           `{"vendor": "anthropic"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			profileID:      profileID.String(),
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown vendor rejected before the service",
			profileID:      profileID.String(),
			body:           `{"vendor": "mistral"}`,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "profile not found",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     domain.ErrNotFound,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "vendor not configured",
			profileID:      profileID.String(),
			body:           `{"vendor": "gemini"}`,
			serviceErr:     ai.ErrNotConfigured,
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid credential",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     ai.ErrInvalidCredential,
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name:           "rate limited",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     ai.ErrRateLimited,
			wantStatusCode: http.StatusTooManyRequests,
		},
		{
			name:           "timeout",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     ai.ErrTimeout,
			wantStatusCode: http.StatusGatewayTimeout,
		},
		{
			name:           "unparseable response",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     ai.ErrParsing,
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name:           "network failure",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     ai.ErrNetwork,
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name:           "vendor server error",
			profileID:      profileID.String(),
			body:           `{"vendor": "openai"}`,
			serviceErr:     ai.ErrServer,
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockRecommendationService{}
			if tt.serviceErr != nil {
				mockService.generateFunc = func(ctx context.Context, pid uuid.UUID, req *domain.GenerateRecommendationRequest) (*domain.Recommendation, error) {
					return nil, tt.serviceErr
				}
			}
			handler := NewRecommendationHandler(mockService, &MockLangfuseClient{})

			rec, req := newRecommendationRequest(t, http.MethodPost,
				"/v1/profiles/"+tt.profileID+"/recommendations", tt.body,
				map[string]string{"profileId": tt.profileID})

			handler.Generate(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Generate() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestRecommendationHandler_List(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		profileID      string
		queryParams    string
		listFunc       func(ctx context.Context, profileID uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error)
		wantStatusCode int
	}{
		{
			name:           "default listing",
			profileID:      profileID.String(),
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "with status filter",
			profileID:      profileID.String(),
			queryParams:    "?status=COMPLETED&limit=10",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid status filter",
			profileID:      profileID.String(),
			queryParams:    "?status=DONE",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid profile id",
			profileID:      "xyz",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:      "profile not found",
			profileID: uuid.New().String(),
			listFunc: func(ctx context.Context, pid uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error) {
				return nil, domain.ErrNotFound
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRecommendationHandler(&MockRecommendationService{listFunc: tt.listFunc}, &MockLangfuseClient{})

			rec, req := newRecommendationRequest(t, http.MethodGet,
				"/v1/profiles/"+tt.profileID+"/recommendations"+tt.queryParams, "",
				map[string]string{"profileId": tt.profileID})

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestRecommendationHandler_List_FilterPassedThrough(t *testing.T) {
	profileID := uuid.New()
	var gotFilter domain.RecommendationFilter

	handler := NewRecommendationHandler(&MockRecommendationService{
		listFunc: func(ctx context.Context, pid uuid.UUID, filter domain.RecommendationFilter) (*domain.RecommendationListResponse, error) {
			gotFilter = filter
			return &domain.RecommendationListResponse{Data: []domain.Recommendation{}}, nil
		},
	}, &MockLangfuseClient{})

	rec, req := newRecommendationRequest(t, http.MethodGet,
		"/v1/profiles/"+profileID.String()+"/recommendations?status=FAILED&limit=5&cursor=abc", "",
		map[string]string{"profileId": profileID.String()})

	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if gotFilter.Status != domain.StatusFailed || gotFilter.Limit != 5 || gotFilter.Cursor != "abc" {
		t.Errorf("filter = %+v", gotFilter)
	}
}

func TestRecommendationHandler_GetByID(t *testing.T) {
	recID := uuid.New()

	tests := []struct {
		name             string
		recommendationID string
		getFunc          func(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error)
		wantStatusCode   int
	}{
		{
			name:             "found",
			recommendationID: recID.String(),
			wantStatusCode:   http.StatusOK,
		},
		{
			name:             "invalid uuid",
			recommendationID: "abc",
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:             "not found",
			recommendationID: uuid.New().String(),
			getFunc: func(ctx context.Context, id uuid.UUID) (*domain.Recommendation, error) {
				return nil, domain.ErrNotFound
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRecommendationHandler(&MockRecommendationService{getFunc: tt.getFunc}, &MockLangfuseClient{})

			rec, req := newRecommendationRequest(t, http.MethodGet,
				"/v1/recommendations/"+tt.recommendationID, "",
				map[string]string{"recommendationId": tt.recommendationID})

			handler.GetByID(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetByID() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestRecommendationHandler_PostFeedback(t *testing.T) {
	recID := uuid.New()

	tests := []struct {
		name             string
		recommendationID string
		body             string
		wantStatusCode   int
		wantScores       int
	}{
		{
			name:             "valid feedback",
			recommendationID: recID.String(),
			body:             `{"trace_id": "550e8400-e29b-41d4-a716-446655440000", "score": 4, "comment": "helpful"}`,
			wantStatusCode:   http.StatusNoContent,
			wantScores:       1,
		},
		{
			name:             "missing trace id",
			recommendationID: recID.String(),
			body:             `{"score": 4}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:             "score too high",
			recommendationID: recID.String(),
			body:             `{"trace_id": "550e8400-e29b-41d4-a716-446655440000", "score": 6}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:             "score too low",
			recommendationID: recID.String(),
			body:             `{"trace_id": "550e8400-e29b-41d4-a716-446655440000", "score": 0}`,
			wantStatusCode:   http.StatusBadRequest,
		},
		{
			name:             "invalid uuid",
			recommendationID: "abc",
			body:             `{"trace_id": "550e8400-e29b-41d4-a716-446655440000", "score": 4}`,
			wantStatusCode:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			langfuseClient := &MockLangfuseClient{}
			handler := NewRecommendationHandler(&MockRecommendationService{}, langfuseClient)

			rec, req := newRecommendationRequest(t, http.MethodPost,
				"/v1/recommendations/"+tt.recommendationID+"/feedback", tt.body,
				map[string]string{"recommendationId": tt.recommendationID})

			handler.PostFeedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostFeedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if len(langfuseClient.scores) != tt.wantScores {
				t.Errorf("scores recorded = %d, want %d", len(langfuseClient.scores), tt.wantScores)
			}
		})
	}
}

func TestRecommendationHandler_PostFeedback_ScoreForwarded(t *testing.T) {
	langfuseClient := &MockLangfuseClient{}
	handler := NewRecommendationHandler(&MockRecommendationService{}, langfuseClient)

	rec, req := newRecommendationRequest(t, http.MethodPost,
		"/v1/recommendations/"+uuid.New().String()+"/feedback",
		`{"trace_id": "trace-1", "score": 5, "comment": "great plan"}`,
		map[string]string{"recommendationId": uuid.New().String()})

	handler.PostFeedback(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	score := langfuseClient.scores[0]
	if score.TraceID != "trace-1" || score.Name != "user_rating" || score.Value != 5 || score.Comment != "great plan" {
		t.Errorf("score = %+v", score)
	}
}

func TestRecommendationHandler_Generate_ResponseBody(t *testing.T) {
	profileID := uuid.New()
	handler := NewRecommendationHandler(&MockRecommendationService{}, &MockLangfuseClient{})

	rec, req := newRecommendationRequest(t, http.MethodPost,
		"/v1/profiles/"+profileID.String()+"/recommendations",
		`{"vendor": "anthropic"}`,
		map[string]string{"profileId": profileID.String()})

	handler.Generate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp domain.GenerateRecommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ProfileID != profileID || resp.Vendor != "anthropic" {
		t.Errorf("response = %+v", resp.Recommendation)
	}
	if resp.Status != domain.StatusCompleted || resp.Result == nil {
		t.Errorf("result = %+v", resp.Result)
	}
}
