// readguard is a proof-of-reading gate for pull requests: it quizzes
// the reviewer about the diff and blocks the merge until the quiz is
// answered correctly.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/readguard/readguard/internal/config"
	"github.com/readguard/readguard/internal/gate"
	"github.com/readguard/readguard/internal/github"
	"github.com/readguard/readguard/internal/llm"
	"github.com/readguard/readguard/internal/logging"
)

var (
	envFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "readguard",
	Short: "readguard - proof-of-reading gate for pull requests",
	Long: `Posts an AI-generated comprehension quiz about a pull request's diff
and gates the merge on a correct /answer reply. Designed to run as a
GitHub Action in generate or verify mode.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRun,
	// Invoking the bare binary dispatches on INPUT_MODE, which is how
	// the Action's entrypoint calls it.
	RunE: func(cmd *cobra.Command, args []string) error {
		switch cfg.Mode {
		case config.ModeGenerate:
			return runGenerate(cmd.Context())
		case config.ModeVerify:
			return runVerify(cmd.Context())
		default:
			return fmt.Errorf("invalid mode %q (valid: generate, verify)", cfg.Mode)
		}
	},
}

func initRun(cmd *cobra.Command, args []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file: %w", err)
		}
	}
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c
	logging.Init(cfg.LogLevel)
	return nil
}

// buildGenerator constructs the configured question provider.
func buildGenerator() (llm.Generator, error) {
	switch cfg.Provider {
	case "openai":
		return llm.NewOpenAIGenerator(cfg.APIKey, cfg.Model, "")
	case "anthropic":
		return llm.NewAnthropicGenerator(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unsupported provider %q (valid: openai, anthropic)", cfg.Provider)
	}
}

// loadPullContext resolves the event payload to a pull request host.
func loadPullContext() (*github.Event, gate.Host, error) {
	ev, err := github.LoadEvent(cfg.EventPath)
	if err != nil {
		return nil, nil, err
	}
	number, err := ev.PullNumber()
	if err != nil {
		return nil, nil, err
	}
	client := github.NewClient(cfg.GitHubToken, cfg.Owner, cfg.Repo)
	return ev, github.NewPullHost(client, number), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from a dotenv file before reading config")
	rootCmd.AddCommand(generateCmd, verifyCmd, previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
