package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/countrylist/internal/config"
	"github.com/rshade/countrylist/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the countrylist CLI.
// Without a subcommand it opens the interactive list when stdout is a terminal
// and prints the first page otherwise.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv, isTerminal(os.Stdout))
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup and
// terminal detection result for testability.
func NewRootCmdWithEnv(
	ver string,
	lookupEnv func(string) (string, bool),
	interactive bool,
) *cobra.Command {
	st := &cliState{lookupEnv: lookupEnv}
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "countrylist",
		Short:         "Browse countries by region, name and area",
		Long:          "countrylist: list countries from the restcountries API, filter by region, sort and page through them",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := st.loadConfig(cmd); err != nil {
				return err
			}
			st.interactive = interactive && cmd == cmd.Root()
			result := setupLogging(cmd, st)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if st.interactive {
				return runInteractive(cmd.Context(), st)
			}
			return renderList(cmd, st, newListOptions())
		},
	}

	cmd.PersistentFlags().BoolVar(&st.flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&st.flags.configPath, "config", "",
		fmt.Sprintf("config file (default %s)", config.DefaultPath()))
	cmd.PersistentFlags().StringVar(&st.flags.endpoint, "endpoint", "",
		"countries API endpoint (overrides config file and "+config.EnvEndpoint+")")
	cmd.PersistentFlags().StringVar(&st.flags.fromFile, "from-file", "",
		"read countries from a JSON file instead of the API")
	cmd.PersistentFlags().DurationVar(&st.flags.timeout, "timeout", 0,
		"API request timeout, e.g. 10s (0 = use config default)")

	cmd.AddCommand(newListCmd(st), newOptionsCmd(), newVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse countries interactively
  countrylist

  # Print the second page of European countries by ascending area
  countrylist list --region Europe --sort area_asc --page 2

  # Countries smaller than Lithuania as JSON
  countrylist list --sort smaller_than_reference --output json

  # Work offline from a saved response
  countrylist list --from-file countries.json

  # Show the available sort options and regions
  countrylist options`

// rootFlags holds the persistent flag values.
type rootFlags struct {
	debug      bool
	configPath string
	endpoint   string
	fromFile   string
	timeout    time.Duration
}

// cliState is shared by the root command and its subcommands for one invocation.
type cliState struct {
	flags       rootFlags
	lookupEnv   func(string) (string, bool)
	cfg         *config.Config
	interactive bool
}

// loadConfig reads the config file, then applies environment and flag overrides.
func (s *cliState) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadWithEnv(s.flags.configPath, s.lookupEnv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Source.Endpoint = s.flags.endpoint
	}
	if flags.Changed("from-file") {
		cfg.Source.File = s.flags.fromFile
	}
	if flags.Changed("timeout") && s.flags.timeout != 0 {
		cfg.Source.Timeout = s.flags.timeout
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	s.cfg = cfg
	return nil
}
