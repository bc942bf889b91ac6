package cli

import (
	"context"
	"fmt"
	"strings"

	"careersie/internal/ai"
	"careersie/internal/common"
	"careersie/internal/types"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [job-description-file]",
	Short: "Parse a raw job description into structured data",
	Long: `Parse a raw job description into structured data using AI.
The command takes one argument: the path to a plain text file containing the
job posting. The output includes the role, seniority, skills, tools,
responsibilities, requirements and keywords extracted from the posting.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if parseConfig.OutputFormat == "" {
			parseConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(parseConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runParse,
}

var parseConfig common.CommandConfig

func init() {
	parseCmd.Flags().StringVarP(&parseConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = parseCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for parse operation
	parseAIConfig := cfg.GetParseConfig()
	aiService, err := ai.NewService(&parseAIConfig, "parse", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (types.ParseJobInput, error) {
		if len(contents) != 1 {
			return types.ParseJobInput{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		if strings.TrimSpace(contents[0]) == "" {
			return types.ParseJobInput{}, fmt.Errorf("job description file is empty")
		}
		return types.ParseJobInput{JobDescription: contents[0]}, nil
	}

	logDetails := func(input types.ParseJobInput, cfg common.CommandConfig) {
		logger.Info("Starting job description parsing",
			"job_chars", len(input.JobDescription),
			"output_format", cfg.OutputFormat)
	}

	// Create a wrapper function that uses our specific AI service
	parseOperation := func(ctx context.Context, input types.ParseJobInput) (types.ParsedJobData, *ai.TokenUsage, error) {
		return aiService.Provider.ParseJob(ctx, input)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		parseConfig,
		args,
		createInput,
		parseOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}
	logger.Info("Job description parsing completed successfully")
	return nil
}
