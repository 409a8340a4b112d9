package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/readguard/readguard/internal/config"
	"github.com/readguard/readguard/internal/gate"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Evaluate the triggering comment as a quiz answer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd.Context())
	},
}

func runVerify(ctx context.Context) error {
	if err := cfg.Validate(config.ModeVerify); err != nil {
		return err
	}

	ev, host, err := loadPullContext()
	if err != nil {
		return err
	}

	engine := gate.NewEngine(host, nil, slog.Default())
	out, err := engine.HandleReply(ctx, ev.CommentBody())
	if err != nil {
		// Includes gate.ErrNoOpenChallenge: an operator condition — the
		// reviewer gets no comment because there is nothing
		// authoritative to respond about.
		return err
	}
	if !out.Handled {
		slog.Info("comment does not contain a valid answer format; ignoring")
		return nil
	}

	slog.Info("reply evaluated", "state", string(out.State), "conclusion", string(out.Conclusion))
	return nil
}
