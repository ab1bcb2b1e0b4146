package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/structcalc/beamcheck/internal/code"
	"github.com/structcalc/beamcheck/internal/version"
)

var (
	cfgFile  string
	codeName string
	verbose  bool

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "beamcheck",
	Short: "Reinforced Concrete Beam Compliance Checker",
	Long: `beamcheck - Reinforced Concrete Beam Design & Compliance Engine

A CLI for designing rectangular reinforced concrete beam sections and
checking them against a structural design code, clause by clause:

  - Flexural design (singly reinforced, doubly reinforced fallback)
  - Shear design and stirrup spacing
  - Serviceability (span/depth, crack control)
  - Reinforcement detailing (development length, spacing, curtailment)

Supported code profiles: nscp2015 (default), aci318m. The profile is an
explicit value; two profiles can be used side by side in batch runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("beamcheck v%s\n\n", version.Version)
		fmt.Println("A deterministic design and compliance engine for reinforced")
		fmt.Println("concrete beam sections. Use 'beamcheck --help' for commands.")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .beamcheck.yaml)")
	rootCmd.PersistentFlags().StringVar(&codeName, "code", "", "design code profile (nscp2015, aci318m)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".beamcheck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	viper.SetEnvPrefix("beamcheck")
	viper.AutomaticEnv()

	viper.SetDefault("code", "nscp2015")
	viper.SetDefault("bars.main", 20)
	viper.SetDefault("bars.stirrup", 10)
	viper.SetDefault("bars.legs", 2)
	viper.SetDefault("batch.workers", 0)

	// A missing config file is fine; bad syntax is not.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "Error reading config: %v\n", err)
			os.Exit(1)
		}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// profile resolves the design code profile from the flag, config file,
// or default, in that order.
func profile() (code.Profile, error) {
	name := codeName
	if name == "" {
		name = viper.GetString("code")
	}
	p, ok := code.Profiles()[strings.ToLower(name)]
	if !ok {
		return code.Profile{}, fmt.Errorf("unknown code profile %q (want nscp2015 or aci318m)", name)
	}
	return p, nil
}
