// Package config loads the Action's configuration surface: INPUT_* and
// GITHUB_* environment variables, with optional repo-side defaults from
// .github/readguard.yml. Environment always wins over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Mode selects which half of the protocol an invocation runs.
const (
	ModeGenerate = "generate"
	ModeVerify   = "verify"
	ModePreview  = "preview"
)

// OverlayFile is the repo-side defaults file, relative to the workspace.
const OverlayFile = ".github/readguard.yml"

// Config is everything the process reads from its environment. It
// selects inputs to the protocol but carries no protocol logic.
type Config struct {
	Mode        string
	GitHubToken string
	Owner       string
	Repo        string
	EventPath   string

	Provider           string
	Model              string
	APIKey             string
	Difficulty         string
	SystemPrompt       string
	CustomInstructions string

	LogLevel string
}

// Load reads configuration without validating it; call Validate with
// the effective mode before running core logic.
func Load() (*Config, error) {
	v := viper.New()

	bindings := map[string][]string{
		"mode":                {"INPUT_MODE"},
		"github_token":        {"INPUT_GITHUB_TOKEN", "GITHUB_TOKEN"},
		"repository":          {"GITHUB_REPOSITORY"},
		"event_path":          {"GITHUB_EVENT_PATH"},
		"provider":            {"INPUT_PROVIDER"},
		"model":               {"INPUT_MODEL"},
		"api_key":             {"INPUT_API_KEY"},
		"difficulty":          {"INPUT_DIFFICULTY"},
		"system_prompt":       {"INPUT_SYSTEM_PROMPT"},
		"custom_instructions": {"INPUT_CUSTOM_INSTRUCTIONS"},
		"log_level":           {"INPUT_LOG_LEVEL"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	v.SetDefault("mode", ModeGenerate)
	v.SetDefault("provider", "openai")
	v.SetDefault("difficulty", "medium")
	v.SetDefault("log_level", "info")

	if err := applyOverlay(v, filepath.Join(workspaceDir(), OverlayFile)); err != nil {
		return nil, err
	}

	cfg := &Config{
		Mode:               strings.ToLower(v.GetString("mode")),
		GitHubToken:        v.GetString("github_token"),
		EventPath:          v.GetString("event_path"),
		Provider:           strings.ToLower(v.GetString("provider")),
		Model:              v.GetString("model"),
		APIKey:             v.GetString("api_key"),
		Difficulty:         v.GetString("difficulty"),
		SystemPrompt:       v.GetString("system_prompt"),
		CustomInstructions: v.GetString("custom_instructions"),
		LogLevel:           v.GetString("log_level"),
	}

	if repo := v.GetString("repository"); repo != "" {
		owner, name, ok := strings.Cut(repo, "/")
		if !ok || owner == "" || name == "" {
			return nil, fmt.Errorf("GITHUB_REPOSITORY %q is not in owner/repo form", repo)
		}
		cfg.Owner, cfg.Repo = owner, name
	}

	return cfg, nil
}

// workspaceDir is where the checked-out repository lives. Actions sets
// GITHUB_WORKSPACE; outside a runner fall back to the current directory.
func workspaceDir() string {
	if ws := os.Getenv("GITHUB_WORKSPACE"); ws != "" {
		return ws
	}
	return "."
}

// Validate checks the requirements of a mode. Failures here are
// configuration errors: fatal before any core logic runs, reported to
// the operator only.
func (c *Config) Validate(mode string) error {
	switch mode {
	case ModeGenerate, ModeVerify, ModePreview:
	default:
		return fmt.Errorf("invalid mode %q (valid: generate, verify)", mode)
	}

	if mode == ModeGenerate || mode == ModeVerify {
		if c.GitHubToken == "" {
			return fmt.Errorf("missing required input: INPUT_GITHUB_TOKEN")
		}
		if c.Owner == "" || c.Repo == "" {
			return fmt.Errorf("missing required environment variable: GITHUB_REPOSITORY")
		}
		if c.EventPath == "" {
			return fmt.Errorf("missing required environment variable: GITHUB_EVENT_PATH")
		}
	}
	if mode == ModeGenerate || mode == ModePreview {
		if c.APIKey == "" {
			return fmt.Errorf("missing required input: INPUT_API_KEY")
		}
	}
	return nil
}
