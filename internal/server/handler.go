package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"careersie/internal/ai"
	"careersie/internal/match"
	"careersie/internal/observability"
	"careersie/internal/types"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// createParseHandler wraps the parse handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careersie.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		var req ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		if len(req.JobDescription) > int(s.MaxRequestSize) {
			err := fmt.Errorf("job description too large: %d chars", len(req.JobDescription))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job description too large", fmt.Sprintf("jobDescription exceeds recommended size limit of %d characters", s.MaxRequestSize), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "parse"),
		)

		result, err := s.parseJobDescription(ctx, req.JobDescription, om, span)
		if err != nil {
			writeErrorResponse(w, "Failed to parse job description", err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careersie.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.profile_hard_skills", len(req.Profile.HardSkills)),
			attribute.Int("request.job_hard_skills", len(req.Job.HardSkills)),
			attribute.String("operation", "score"),
		)

		// Scoring is pure and never fails
		result := match.CalculateRelevanceScore(req.Profile, req.Job)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "profile_scored", true, om,
			attribute.Int("score.overall", result.ScoreBreakdown.Overall))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", result.ScoreBreakdown.Overall),
			attribute.String("score.alignment", result.MatchDetails.ExperienceAlignment),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createMatchHandler wraps the match handler with observability.
// It parses the raw job description with AI, then scores the profile against it.
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careersie.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "match"),
		)

		parsed, err := s.parseJobDescription(ctx, req.JobDescription, om, span)
		if err != nil {
			writeErrorResponse(w, "Failed to parse job description", err.Error(), http.StatusInternalServerError)
			return
		}

		scored := match.CalculateRelevanceScore(req.Profile, parsed)
		result := types.MatchResult{
			ParsedJob:      parsed,
			ScoreBreakdown: scored.ScoreBreakdown,
			MatchDetails:   scored.MatchDetails,
		}

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "profile_scored", true, om,
			attribute.Int("score.overall", result.ScoreBreakdown.Overall))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.overall", result.ScoreBreakdown.Overall),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRankHandler wraps the rank handler with observability
func (s *Server) createRankHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careersie.api")
		ctx, span := tracer.Start(ctx, "api.rank")
		defer span.End()

		var req RankRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.experience_count", len(req.Experience)),
			attribute.Int("request.responsibility_count", len(req.JobResponsibilities)),
			attribute.String("operation", "rank"),
		)

		result := match.ReorderExperience(req.Experience, req.JobResponsibilities)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "experience_reordered", true, om,
			attribute.Int("entries", len(result)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.entries", len(result)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseJobDescription runs the AI-backed parse operation with metrics and tracing
func (s *Server) parseJobDescription(ctx context.Context, jobDescription string, om *observability.ObservabilityManager, span oteltrace.Span) (types.ParsedJobData, error) {
	parseConfig := s.AppConfig.GetParseConfig()
	aiService, err := ai.NewService(&parseConfig, "parse", s.Logger)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "service_creation"))
		return types.ParsedJobData{}, err
	}

	input := types.ParseJobInput{JobDescription: jobDescription}

	metrics := om.GetMetrics()
	var result types.ParsedJobData
	err = metrics.TrackAIOperationWithTokens(ctx, "parse", func(ctx context.Context) *observability.AIOperationResult {
		output, tokenUsage, aiErr := aiService.Provider.ParseJob(ctx, input)
		result = output
		return &observability.AIOperationResult{
			Error:      aiErr,
			TokenUsage: (*observability.TokenUsage)(tokenUsage),
		}
	}, om)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("error.type", "ai_processing"))
		metrics.RecordBusinessMetric(ctx, "job_parsed", false, om,
			attribute.String("error", err.Error()))
		return types.ParsedJobData{}, err
	}

	metrics.RecordBusinessMetric(ctx, "job_parsed", true, om,
		attribute.Int("output.hard_skills", len(result.HardSkills)),
		attribute.Int("output.keywords", len(result.Keywords)))

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.String("output.role", result.Role),
	)

	return result, nil
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
