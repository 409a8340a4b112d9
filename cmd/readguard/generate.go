package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/readguard/readguard/internal/config"
	"github.com/readguard/readguard/internal/gate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Post a comprehension quiz for the pull request's diff",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context())
	},
}

func runGenerate(ctx context.Context) error {
	if err := cfg.Validate(config.ModeGenerate); err != nil {
		return err
	}

	gen, err := buildGenerator()
	if err != nil {
		return err
	}
	_, host, err := loadPullContext()
	if err != nil {
		return err
	}

	engine := gate.NewEngine(host, gen, slog.Default())
	err = engine.Generate(ctx, gate.GenerateOptions{
		Difficulty:        cfg.Difficulty,
		SystemPrompt:      cfg.SystemPrompt,
		ExtraInstructions: cfg.CustomInstructions,
	})
	if errors.Is(err, gate.ErrNoChanges) {
		slog.Info("no diff found or no changes; nothing to do")
		return nil
	}
	return err
}
