package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
// While the interactive list owns the terminal, logs always go to a file.
func setupLogging(cmd *cobra.Command, st *cliState) logging.LogPathResult {
	loggingCfg := st.cfg.Logging

	if st.flags.debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}
	if st.interactive && loggingCfg.File == "" {
		loggingCfg.File = config.DefaultLogFile()
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	} else if result.UsingFile && !st.interactive {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	traced := logger.With().Str(logging.TraceIDField, traceID).Logger()
	ctx = traced.WithContext(ctx)
	cmd.SetContext(ctx)

	traced.Debug().Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(_ *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
