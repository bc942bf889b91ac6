package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	// Initialize loaded prompts exactly once
	loadedPromptsOnce.Do(func() {
		loadedPrompts = AllLoadedPrompts{}
	})

	// Load global prompts
	if c.AI.CustomPrompts.SystemPrompts.ParseJobFile != "" {
		content, err := c.loadPromptFromFile(c.AI.CustomPrompts.SystemPrompts.ParseJobFile, "system", "parseJob")
		if err != nil {
			return fmt.Errorf("failed to load global system prompts: %w", err)
		}
		loadedPrompts.Global.SystemPrompts.ParseJob = content
	}
	if c.AI.CustomPrompts.UserPrompts.ParseJobFile != "" {
		content, err := c.loadPromptFromFile(c.AI.CustomPrompts.UserPrompts.ParseJobFile, "user", "parseJob")
		if err != nil {
			return fmt.Errorf("failed to load global user prompts: %w", err)
		}
		loadedPrompts.Global.UserPrompts.ParseJob = content
	}

	// Load operation-specific prompts
	if c.AI.Parse.CustomPrompts.SystemPrompts.ParseJobFile != "" {
		content, err := c.loadPromptFromFile(c.AI.Parse.CustomPrompts.SystemPrompts.ParseJobFile, "parse system", "parseJob")
		if err != nil {
			return fmt.Errorf("failed to load parse system prompts: %w", err)
		}
		loadedPrompts.Parse.SystemPrompts.ParseJob = content
	}
	if c.AI.Parse.CustomPrompts.UserPrompts.ParseJobFile != "" {
		content, err := c.loadPromptFromFile(c.AI.Parse.CustomPrompts.UserPrompts.ParseJobFile, "parse user", "parseJob")
		if err != nil {
			return fmt.Errorf("failed to load parse user prompts: %w", err)
		}
		loadedPrompts.Parse.UserPrompts.ParseJob = content
	}

	c.logPromptLoadingSummary()

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	validateFile(c.AI.CustomPrompts.SystemPrompts.ParseJobFile, "system", "parseJob")
	validateFile(c.AI.CustomPrompts.UserPrompts.ParseJobFile, "user", "parseJob")
	validateFile(c.AI.Parse.CustomPrompts.SystemPrompts.ParseJobFile, "parse system", "parseJob")
	validateFile(c.AI.Parse.CustomPrompts.UserPrompts.ParseJobFile, "parse user", "parseJob")

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// logPromptLoadingSummary logs a summary of loaded prompts
func (c *Config) logPromptLoadingSummary() {
	promptCount := 0

	promptChecks := []struct {
		content string
		message string
	}{
		{loadedPrompts.Global.SystemPrompts.ParseJob, "[CONFIG] Global system parse prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.ParseJob, "[CONFIG] Global user parse prompt: loaded from config/file"},
		{loadedPrompts.Parse.SystemPrompts.ParseJob, "[CONFIG] Parse-specific system prompt: loaded from config/file"},
		{loadedPrompts.Parse.UserPrompts.ParseJob, "[CONFIG] Parse-specific user prompt: loaded from config/file"},
	}

	for _, check := range promptChecks {
		if check.content != "" {
			log.Println(check.message)
			promptCount++
		}
	}

	if promptCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompts loaded: %d", promptCount)
	}
}
