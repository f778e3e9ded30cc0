package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/julianstephens/calories/internal/cli"
	"github.com/julianstephens/calories/internal/cli/estimates"
	"github.com/julianstephens/calories/internal/cli/system"
	"github.com/julianstephens/calories/internal/config"
	"github.com/julianstephens/calories/internal/constants"
	apperrors "github.com/julianstephens/calories/internal/errors"
	"github.com/julianstephens/calories/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Enable debug logging." env:"CALORIES_DEBUG"`
	ConfigDir string `help:"Directory holding config.yaml and logs." env:"CALORIES_CONFIG_DIR" type:"string" default:"~/.config/calories"`

	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive calorie screen." default:"1"`
	Estimate estimates.EstimateCmd `cmd:"" help:"Print a one-shot calorie estimate."`
	Levels   estimates.LevelsCmd   `cmd:"" help:"List the activity intensity levels."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run self checks and diagnostics."`
}

func main() {
	// .env must be loaded before kong reads CALORIES_* variables.
	if err := config.LoadDotEnv(constants.DotEnvFile); err != nil {
		apperrors.Fatal(err)
	}

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily calorie estimator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir, err := config.ExpandHome(CLI.ConfigDir)
	if err != nil {
		apperrors.Fatal(err)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		apperrors.Fatal(err)
	}

	// doctor reports config problems itself instead of refusing to start.
	command := ctx.Command()
	if !strings.HasPrefix(command, "doctor") {
		if err := cfg.Validate(); err != nil {
			apperrors.Fatal(err)
		}
	}

	sessionID := uuid.NewString()
	if err := logger.Init(logger.Config{
		Debug:      CLI.Debug || cfg.Debug,
		ConfigDir:  configDir,
		Quiet:      strings.HasPrefix(command, "tui"),
		SessionID:  sessionID,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		apperrors.Fatal(fmt.Errorf("failed to initialize logger: %w", err))
	}
	logger.Debug("Starting", "command", command, "config_dir", configDir)

	appCtx := &cli.Context{
		Config:    cfg,
		ConfigDir: configDir,
		SessionID: sessionID,
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
