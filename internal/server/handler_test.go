package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"careersie/internal/ai"
	"careersie/internal/config"
	careersieErrors "careersie/internal/errors"
	"careersie/internal/observability"
	"careersie/internal/types"
)

func newTestServer(t *testing.T) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}

	s := &Server{
		Host:           "localhost",
		Port:           "8080",
		Version:        "test",
		AppConfig:      &config.Config{},
		APIKeys:        map[string]bool{},
		MaxRequestSize: 1024 * 1024,
		Logger:         careersieErrors.NewLogger(slog.LevelError),
	}

	return s, om
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestScoreHandler(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createScoreHandler(om)

	req := ScoreRequest{
		Profile: types.ProfileData{
			HardSkills: []string{"React", "Node.js"},
			SoftSkills: []string{"communication"},
			Seniority:  "Senior Engineer",
		},
		Job: types.ParsedJobData{
			HardSkills: []string{"react", "redux"},
			SoftSkills: []string{"communication"},
			Seniority:  "Senior",
		},
	}

	rec := postJSON(t, handler, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result types.RelevanceResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := types.ScoreBreakdown{
		HardSkills:       33,
		SoftSkills:       100,
		Responsibilities: 0,
		Keywords:         100,
		Seniority:        100,
		Overall:          53,
	}
	if result.ScoreBreakdown != want {
		t.Errorf("ScoreBreakdown = %+v, want %+v", result.ScoreBreakdown, want)
	}
	if result.MatchDetails.ExperienceAlignment != "low" {
		t.Errorf("ExperienceAlignment = %q, want low", result.MatchDetails.ExperienceAlignment)
	}
}

func TestScoreHandlerRejectsWrongContentType(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createScoreHandler(om)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRankHandler(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createRankHandler(om)

	req := RankRequest{
		Experience: []types.ExperienceEntry{
			{Title: "Support Engineer", Responsibilities: []string{"answered customer tickets"}},
			{Title: "Backend Engineer", Responsibilities: []string{"built backend services in go"}},
		},
		JobResponsibilities: []string{"build backend services in go"},
	}

	rec := postJSON(t, handler, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var result []types.RankedExperience
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("got %d entries, want 2", len(result))
	}
	if result[0].Title != "Backend Engineer" {
		t.Errorf("top entry = %q, want Backend Engineer", result[0].Title)
	}
	if result[0].Relevance < result[1].Relevance {
		t.Errorf("entries not sorted by relevance: %d < %d", result[0].Relevance, result[1].Relevance)
	}
}

func TestParseHandlerMissingJobDescription(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createParseHandler(om)

	rec := postJSON(t, handler, ParseRequest{JobDescription: "   "})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Error != "Missing job description" {
		t.Errorf("error = %q, want 'Missing job description'", errResp.Error)
	}
}

func TestMatchHandlerMissingJobDescription(t *testing.T) {
	s, om := newTestServer(t)
	handler := s.createMatchHandler(om)

	rec := postJSON(t, handler, MatchRequest{
		Profile: types.ProfileData{HardSkills: []string{"go"}},
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAuthMiddleware(t *testing.T) {
	s, _ := newTestServer(t)
	s.APIKeys = map[string]bool{"valid-key-12345": true}

	called := false
	handler := s.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("MissingKey", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if called {
			t.Error("handler should not be called without API key")
		}
	})

	t.Run("InvalidKey", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-API-Key", "wrong-key")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("ValidKey", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("X-API-Key", "valid-key-12345")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !called {
			t.Error("handler should be called with valid API key")
		}
	})

	t.Run("BearerToken", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-key-12345")
		rec := httptest.NewRecorder()
		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestStatsHandler(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	s.statsHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var response map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if response["service"] != "careersie" {
		t.Errorf("service = %v, want careersie", response["service"])
	}

	rateLimiting, ok := response["rate_limiting"].(map[string]any)
	if !ok {
		t.Fatal("rate_limiting section missing")
	}
	if enabled, ok := rateLimiting["enabled"].(bool); !ok || enabled {
		t.Errorf("rate_limiting.enabled = %v, want false", rateLimiting["enabled"])
	}
}

func TestStatsHandlerRejectsPost(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/stats", nil)
	rec := httptest.NewRecorder()
	s.statsHandler(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestAIModelsHealthy(t *testing.T) {
	tests := []struct {
		name     string
		aiStatus map[string]any
		want     bool
	}{
		{
			name:     "no models",
			aiStatus: map[string]any{},
			want:     true,
		},
		{
			name: "available model info",
			aiStatus: map[string]any{
				"parse": &ai.ModelInfo{Name: "gemini-2.0-flash", Available: true},
			},
			want: true,
		},
		{
			name: "unavailable model info",
			aiStatus: map[string]any{
				"parse": &ai.ModelInfo{Name: "gemini-2.0-flash", Available: false, Error: "model not reachable"},
			},
			want: false,
		},
		{
			name: "service creation failure map",
			aiStatus: map[string]any{
				"parse": map[string]any{"available": false, "error": "no API key"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aiModelsHealthy(tt.aiStatus); got != tt.want {
				t.Errorf("aiModelsHealthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"short", "****"},
		{"12345678", "****"},
		{"123456789abcdef", "12345678****"},
	}

	for _, tt := range tests {
		if got := maskAPIKey(tt.key); got != tt.want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
