package ai

import (
	"testing"
	"time"

	"careersie/internal/config"

	"google.golang.org/genai"
)

func TestParseCircuitBreakerCreation(t *testing.T) {
	parseConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	cb := NewAICircuitBreaker("Parse", parseConfig, nil)
	if cb == nil {
		t.Fatal("Circuit breaker should not be nil")
	}

	t.Run("StatsReportNameAndState", func(t *testing.T) {
		stats := cb.GetStats()

		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Circuit breaker name not found")
		}
		expectedName := "AI-Parse"
		if name != expectedName {
			t.Errorf("Expected circuit breaker name '%s', got '%s'", expectedName, name)
		}

		state, ok := stats["state"].(string)
		if !ok {
			t.Fatal("Circuit breaker state not found")
		}
		if state != "closed" {
			t.Errorf("Expected initial state 'closed', got '%s'", state)
		}

		enabled, ok := stats["enabled"].(bool)
		if !ok {
			t.Fatal("Circuit breaker enabled status not found")
		}
		if !enabled {
			t.Error("Circuit breaker should be enabled")
		}
	})

	t.Run("HealthyInitially", func(t *testing.T) {
		if !cb.IsHealthy() {
			t.Error("Circuit breaker should be healthy initially")
		}
	})

	t.Run("ModelBreakerIsSeparate", func(t *testing.T) {
		modelCB := NewModelCircuitBreaker("Parse", parseConfig, nil)
		if modelCB == nil {
			t.Fatal("Model circuit breaker should not be nil")
		}

		stats := modelCB.GetModelStats()
		name, ok := stats["name"].(string)
		if !ok {
			t.Fatal("Model circuit breaker name not found")
		}
		expectedName := "AI-Model-Parse"
		if name != expectedName {
			t.Errorf("Expected circuit breaker name '%s', got '%s'", expectedName, name)
		}

		if !modelCB.IsModelHealthy() {
			t.Error("Model circuit breaker should be healthy initially")
		}
	})
}

func TestCircuitBreakerConfigurationMapping(t *testing.T) {
	// Test that configuration values are properly applied to circuit breakers

	customConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      10,
			Interval:         120 * time.Second,
			Timeout:          90 * time.Second,
			MinRequests:      5,
			FailureThreshold: 0.8,
		},
	}

	cb := NewAICircuitBreaker("Test", customConfig, nil)

	if cb == nil {
		t.Fatal("Circuit breaker should not be nil")
	}

	stats := cb.GetStats()
	if stats == nil {
		t.Fatal("Circuit breaker stats should not be nil")
	}

	name, ok := stats["name"].(string)
	if !ok {
		t.Fatal("Circuit breaker name not found")
	}

	expectedName := "AI-Test"
	if name != expectedName {
		t.Errorf("Expected circuit breaker name '%s', got '%s'", expectedName, name)
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	// Test that circuit breaker returns nil when disabled

	disabledConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "test-model",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false, // Disabled
		},
	}

	cb := NewAICircuitBreaker("Disabled", disabledConfig, nil)

	// Should return nil when disabled
	if cb != nil {
		t.Fatal("Circuit breaker should be nil when disabled")
	}
}

func TestNilCircuitBreakerIsSafe(t *testing.T) {
	var cb *AICircuitBreaker

	// A nil breaker executes the function directly
	executed := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		executed = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Execute on nil breaker returned error: %v", err)
	}
	if !executed {
		t.Error("Function should have been executed without a breaker")
	}

	stats := cb.GetStats()
	enabled, ok := stats["enabled"].(bool)
	if !ok {
		t.Fatal("Circuit breaker enabled status not found")
	}
	if enabled {
		t.Error("Nil circuit breaker should report enabled=false")
	}

	if !cb.IsHealthy() {
		t.Error("Nil circuit breaker should be considered healthy")
	}
}
