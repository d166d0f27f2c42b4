package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trolleywise/price-service/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trolleywise",
	Short: "Trolleywise CLI - grocery price comparison tooling",
	Long: `A CLI tool for inspecting and exporting the synthetic grocery price
catalog across the six supported UK chains: Tesco, ASDA, Sainsbury's,
Morrisons, Lidl, and Aldi.`,
	PersistentPreRun: persistentPreRun,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml or ./config.yaml)")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
}

func persistentPreRun(cmd *cobra.Command, args []string) {
	logger = initLogger()
}

func initLogger() *zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if cfg != nil {
		if parsed, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
			level = parsed
		}
	}

	// Console format for CLI output
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &l
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
