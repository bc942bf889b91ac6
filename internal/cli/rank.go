package cli

import (
	"fmt"

	"careersie/internal/common"
	"careersie/internal/match"
	"careersie/internal/types"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [experience-file] [parsed-job-file]",
	Short: "Rank past roles by relevance to a job's responsibilities",
	Long: `Rank a candidate's past roles by their relevance to a job's responsibilities.
The command takes two arguments: a JSON file with an array of experience
entries and a JSON file with the parsed job data, typically produced by the
parse command. Ranking is fully local and requires no AI provider or API key.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if rankConfig.OutputFormat == "" {
			rankConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(rankConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRank,
}

var rankConfig common.CommandConfig

func init() {
	rankCmd.Flags().StringVarP(&rankConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rankCmd.Flags().StringVar(&rankConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = rankCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runRank(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	compute := func(contents []string) ([]types.RankedExperience, error) {
		if len(contents) != 2 {
			return nil, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}

		experience, err := common.DecodeJSON[[]types.ExperienceEntry](contents[0], args[0])
		if err != nil {
			return nil, err
		}
		job, err := common.DecodeJSON[types.ParsedJobData](contents[1], args[1])
		if err != nil {
			return nil, err
		}

		logger.Info("Ranking experience entries",
			"entries", len(experience),
			"job_responsibilities", len(job.Responsibilities),
			"output_format", rankConfig.OutputFormat)

		return match.ReorderExperience(experience, job.Responsibilities), nil
	}

	err := common.RunLocalCommand(logger, rankConfig, args, compute)
	if err != nil {
		return fmt.Errorf("failed to rank experience: %w", err)
	}
	logger.Info("Experience ranking completed successfully")
	return nil
}
