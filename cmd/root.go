package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/douhashi/ghlabel/internal/action"
	"github.com/douhashi/ghlabel/internal/config"
	"github.com/douhashi/ghlabel/internal/github"
	"github.com/douhashi/ghlabel/internal/labels"
	"github.com/douhashi/ghlabel/internal/logger"
	"github.com/douhashi/ghlabel/internal/version"
)

var (
	verbose bool
	appLog  logger.Logger
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ghlabel",
		Short: "Manage labels on GitHub issues and pull requests",
		Long: `ghlabel reconciles the labels attached to a GitHub issue or pull
request. It performs exactly one operation per invocation:

  add     append the given labels to the object's label set
  remove  detach each given label from the object
  set     replace the label set with exactly the given labels
  clear   remove all labels from the object

The resulting label list is printed as JSON and, when running inside
GitHub Actions, written to GITHUB_OUTPUT as the "response" output.`,
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				os.Setenv("DEBUG", "true")
			}
			var err error
			appLog, err = logger.NewFromEnv()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: runLabel,
	}

	cmd.Flags().StringP("operation", "o", "", "operation to perform (add, remove, set, clear)")
	cmd.Flags().StringP("labels", "l", "", "comma-separated label names")
	cmd.Flags().IntP("object-id", "n", 0, "issue or pull request number")
	cmd.Flags().String("owner", "", "repository owner (defaults from GITHUB_REPOSITORY)")
	cmd.Flags().String("repo", "", "repository name (defaults from GITHUB_REPOSITORY)")
	cmd.Flags().String("api-version", "", "GitHub API version header value")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runLabel(cmd *cobra.Command, args []string) error {
	cfg := config.NewConfig()
	if err := cfg.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	op, err := labels.ParseOperation(cfg.Operation)
	if err != nil {
		return err
	}

	service, err := newLabelServiceFunc(cfg)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	dispatcher, err := labels.NewDispatcher(service, appLog)
	if err != nil {
		return err
	}

	target := labels.TargetRef{
		Owner:      cfg.GitHub.Owner,
		Repository: cfg.GitHub.Repository,
		Number:     cfg.ObjectID,
	}

	result, err := dispatcher.Dispatch(cmd.Context(), op, target, cfg.ParseLabels())
	if err != nil {
		if outErr := setOutputFunc("error", err.Error()); outErr != nil && appLog != nil {
			appLog.Warn("failed to write step output", "error", outErr.Error())
		}
		return err
	}

	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(body))

	if err := setOutputFunc("response", string(body)); err != nil && appLog != nil {
		appLog.Warn("failed to write step output", "error", err.Error())
	}

	return nil
}

// applyFlags overrides configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("operation") {
		cfg.Operation, _ = flags.GetString("operation")
	}
	if flags.Changed("labels") {
		cfg.Labels, _ = flags.GetString("labels")
	}
	if flags.Changed("object-id") {
		cfg.ObjectID, _ = flags.GetInt("object-id")
	}
	if flags.Changed("owner") {
		cfg.GitHub.Owner, _ = flags.GetString("owner")
	}
	if flags.Changed("repo") {
		cfg.GitHub.Repository, _ = flags.GetString("repo")
	}
	if flags.Changed("api-version") {
		cfg.GitHub.APIVersion, _ = flags.GetString("api-version")
	}
}

// Functions replaced in tests.
var (
	newLabelServiceFunc = newLabelService
	setOutputFunc       = action.SetOutput
)

func newLabelService(cfg *config.Config) (labels.IssueLabelService, error) {
	opts := []github.Option{
		github.WithAPIVersion(cfg.GitHub.APIVersion),
	}
	if appLog != nil {
		opts = append(opts, github.WithLogger(appLog))
	}
	if cfg.GitHub.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
	}
	return github.NewClient(cfg.GitHub.Token, opts...)
}
