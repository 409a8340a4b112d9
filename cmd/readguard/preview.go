package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/readguard/readguard/internal/config"
	"github.com/readguard/readguard/internal/gate"
	"github.com/readguard/readguard/internal/llm"
	"github.com/readguard/readguard/internal/quiz"
)

var previewDiffPath string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate a quiz from a local diff and render it without posting",
	Long: `Reads a unified diff from --diff (or stdin), runs the configured
question generator, and renders the would-be challenge comment in the
terminal. Nothing is posted anywhere; use this to tune prompts and
difficulty before pointing the Action at real pull requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd.Context())
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewDiffPath, "diff", "", "Path to a unified diff file (default: read stdin)")
}

func runPreview(ctx context.Context) error {
	if err := cfg.Validate(config.ModePreview); err != nil {
		return err
	}

	diff, err := readDiff()
	if err != nil {
		return err
	}
	if len(diff) == 0 {
		return fmt.Errorf("no diff provided")
	}
	if len(diff) > gate.MaxDiffChars {
		diff = diff[:gate.MaxDiffChars]
	}

	gen, err := buildGenerator()
	if err != nil {
		return err
	}
	resp, err := gen.Generate(ctx, llm.Request{
		DiffText:          string(diff),
		Difficulty:        cfg.Difficulty,
		SystemPrompt:      cfg.SystemPrompt,
		ExtraInstructions: cfg.CustomInstructions,
	})
	if err != nil {
		return fmt.Errorf("failed to generate question: %w", err)
	}

	body := gate.RenderQuestion(resp.Question, quiz.Options{
		A: resp.Options.A, B: resp.Options.B, C: resp.Options.C,
	})
	fmt.Print(renderMarkdown(body))
	return nil
}

func readDiff() ([]byte, error) {
	if previewDiffPath != "" {
		data, err := os.ReadFile(previewDiffPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read diff: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read diff from stdin: %w", err)
	}
	return data, nil
}

// renderMarkdown pretty-prints the comment body for the terminal,
// falling back to raw markdown if rendering fails.
func renderMarkdown(markdown string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
