package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPromptsFromFiles(t *testing.T) {
	tempDir := t.TempDir()

	systemPromptContent := "Test system prompt for job parsing"
	userPromptContent := "Test user prompt template: %s"

	systemPromptFile := filepath.Join(tempDir, "system.parse.md")
	userPromptFile := filepath.Join(tempDir, "user.parse.md")

	if err := os.WriteFile(systemPromptFile, []byte(systemPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test system prompt file: %v", err)
	}

	if err := os.WriteFile(userPromptFile, []byte(userPromptContent), 0600); err != nil {
		t.Fatalf("Failed to create test user prompt file: %v", err)
	}

	config := &Config{
		AI: AIConfig{
			Parse: OperationAIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{
						ParseJobFile: systemPromptFile,
					},
					UserPrompts: UserPrompts{
						ParseJobFile: userPromptFile,
					},
				},
			},
		},
	}

	if err := config.loadPromptsFromFiles(); err != nil {
		t.Fatalf("Failed to load prompts from files: %v", err)
	}

	loadedOps := GetPromptsForOperation("parse")

	if loadedOps.SystemPrompts.ParseJob != systemPromptContent {
		t.Errorf("Expected loaded system prompt content '%s', got '%s'",
			systemPromptContent, loadedOps.SystemPrompts.ParseJob)
	}

	if loadedOps.UserPrompts.ParseJob != userPromptContent {
		t.Errorf("Expected loaded user prompt content '%s', got '%s'",
			userPromptContent, loadedOps.UserPrompts.ParseJob)
	}

	// File paths stay on the config; only content moves into loadedPrompts
	if config.AI.Parse.CustomPrompts.SystemPrompts.ParseJobFile != systemPromptFile {
		t.Error("Expected system prompt file path to be preserved")
	}

	if config.AI.Parse.CustomPrompts.UserPrompts.ParseJobFile != userPromptFile {
		t.Error("Expected user prompt file path to be preserved")
	}
}

func TestValidatePromptFiles(t *testing.T) {
	tempDir := t.TempDir()

	validFile := filepath.Join(tempDir, "valid.md")
	if err := os.WriteFile(validFile, []byte("Valid content"), 0600); err != nil {
		t.Fatalf("Failed to create valid test file: %v", err)
	}

	t.Run("valid files pass", func(t *testing.T) {
		config := &Config{
			AI: AIConfig{
				CustomPrompts: PromptConfig{
					SystemPrompts: SystemPrompts{ParseJobFile: validFile},
				},
			},
		}
		if err := config.validatePromptFiles(); err != nil {
			t.Errorf("Expected validation to pass, got: %v", err)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		config := &Config{
			AI: AIConfig{
				Parse: OperationAIConfig{
					CustomPrompts: PromptConfig{
						UserPrompts: UserPrompts{ParseJobFile: filepath.Join(tempDir, "missing.md")},
					},
				},
			},
		}
		if err := config.validatePromptFiles(); err == nil {
			t.Error("Expected validation to fail for missing prompt file")
		}
	})

	t.Run("empty paths skipped", func(t *testing.T) {
		config := &Config{}
		if err := config.validatePromptFiles(); err != nil {
			t.Errorf("Expected empty config to pass validation, got: %v", err)
		}
	})
}

func TestLoadPromptFromFileEmptyContent(t *testing.T) {
	tempDir := t.TempDir()

	emptyFile := filepath.Join(tempDir, "empty.md")
	if err := os.WriteFile(emptyFile, []byte("   \n\t  "), 0600); err != nil {
		t.Fatalf("Failed to create empty test file: %v", err)
	}

	config := &Config{}
	if _, err := config.loadPromptFromFile(emptyFile, "system", "parseJob"); err == nil {
		t.Error("Expected error for prompt file with only whitespace")
	}
}
