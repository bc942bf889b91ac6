package cli

import (
	"fmt"

	"careersie/internal/common"
	"careersie/internal/match"
	"careersie/internal/types"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [profile-file] [parsed-job-file]",
	Short: "Score a candidate profile against a parsed job",
	Long: `Score a candidate profile against a parsed job description.
The command takes two arguments: a JSON file with the candidate profile and a
JSON file with the parsed job data, typically produced by the parse command.
Scoring is fully local and requires no AI provider or API key.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if scoreConfig.OutputFormat == "" {
			scoreConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(scoreConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runScore,
}

var scoreConfig common.CommandConfig

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = scoreCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	compute := func(contents []string) (types.RelevanceResult, error) {
		if len(contents) != 2 {
			return types.RelevanceResult{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}

		profile, err := common.DecodeJSON[types.ProfileData](contents[0], args[0])
		if err != nil {
			return types.RelevanceResult{}, err
		}
		job, err := common.DecodeJSON[types.ParsedJobData](contents[1], args[1])
		if err != nil {
			return types.RelevanceResult{}, err
		}

		logger.Info("Scoring profile against job",
			"role", job.Role,
			"profile_skills", len(profile.HardSkills)+len(profile.SoftSkills),
			"output_format", scoreConfig.OutputFormat)

		return match.CalculateRelevanceScore(profile, job), nil
	}

	err := common.RunLocalCommand(logger, scoreConfig, args, compute)
	if err != nil {
		return fmt.Errorf("failed to score profile: %w", err)
	}
	logger.Info("Profile scoring completed successfully")
	return nil
}
