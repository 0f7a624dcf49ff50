package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/config"
	"github.com/rustyeddy/bikelog/journal"
	"github.com/rustyeddy/bikelog/pkg/logger"
	"github.com/rustyeddy/bikelog/record"
)

var rootCmd = &cobra.Command{
	Use:   "bikelog",
	Short: "Track bike mileage and oil purchases",
	Long: `Bikelog keeps a history of odometer readings and oil purchases
and derives distance, consumption and cost figures from it.

Run without a subcommand for the interactive menu, or use the
subcommands for scripted use:

  bikelog add --km 1520 --liters 4 --cost 28.50
  bikelog history
  bikelog stats
  bikelog export history.csv`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runShell,
}

var (
	cfgFile      string
	dataFile     string
	logLevelFlag string

	cfg *config.Config
	log zerolog.Logger
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "history file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug|info|warn|error|off")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dataFile != "" {
		c.DataFile = dataFile
	}
	if logLevelFlag != "" {
		c.Log.Level = logLevelFlag
	}

	lc := c.LoggerConfig()
	lc.Out = cmd.ErrOrStderr()
	log = logger.New(lc)
	logger.SetGlobalLogger(log)

	cfg = c
	return nil
}

func openStore() (*record.Store, error) {
	s, err := record.Open(cfg.DataFile, log)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return s, nil
}

// openRecorder returns the journal mirror, or nil when it is disabled or
// cannot be opened. The history file stays authoritative either way.
func openRecorder() journal.Recorder {
	if !cfg.Journal.Enabled {
		return nil
	}
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("db", cfg.Journal.DBPath).Msg("journal disabled")
		return nil
	}
	return j
}
