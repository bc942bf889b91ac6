package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"careersie/internal/config"
	careersieErrors "careersie/internal/errors"
	"careersie/internal/types"
)

func testOperationConfig() *config.OperationAIConfig {
	timeout := 30 * time.Second
	maxRetries := 0
	temperature := float32(0.1)
	useSystemPrompts := true

	return &config.OperationAIConfig{
		Provider:         "gemini",
		Model:            "gemini-2.0-flash",
		Timeout:          &timeout,
		MaxRetries:       &maxRetries,
		Temperature:      &temperature,
		UseSystemPrompts: &useSystemPrompts,
	}
}

func TestNewGeminiProviderMissingAPIKey(t *testing.T) {
	cfg := testOperationConfig()
	cfg.APIKey = ""

	_, err := NewGeminiProvider(cfg, "parse", careersieErrors.NewLogger(0))
	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	var appErr *careersieErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != careersieErrors.ErrCodeMissingAPIKey {
		t.Errorf("error code = %q, want %q", appErr.Code, careersieErrors.ErrCodeMissingAPIKey)
	}
	if appErr.Type != careersieErrors.ErrorTypeConfig {
		t.Errorf("error type = %q, want %q", appErr.Type, careersieErrors.ErrorTypeConfig)
	}
}

func TestParseJobEmptyDescription(t *testing.T) {
	// Construct the provider directly so the validation path can be
	// exercised without a client. The empty-input check runs before any
	// network call.
	provider := &GeminiProvider{
		config: testOperationConfig(),
		logger: careersieErrors.NewLogger(0),
	}

	_, _, err := provider.ParseJob(context.Background(), types.ParseJobInput{JobDescription: "   "})
	if err == nil {
		t.Fatal("expected error for empty job description")
	}

	var appErr *careersieErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != careersieErrors.ErrCodeEmptyDescription {
		t.Errorf("error code = %q, want %q", appErr.Code, careersieErrors.ErrCodeEmptyDescription)
	}
}

func TestNewServiceUnsupportedProvider(t *testing.T) {
	cfg := testOperationConfig()
	cfg.Provider = "openai"
	cfg.APIKey = "test-key"

	_, err := NewService(cfg, "parse", careersieErrors.NewLogger(0))
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}

	var appErr *careersieErrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != careersieErrors.ErrCodeInvalidConfig {
		t.Errorf("error code = %q, want %q", appErr.Code, careersieErrors.ErrCodeInvalidConfig)
	}
}
