package cli

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/AntonStoeckl/library-lending-go/shell/config"
)

// flag name -> config key
var boundFlags = map[string]string{
	"log-level":             "logging.level",
	"seed":                  "library.seed",
	"events":                "events.enabled",
	"observability-enabled": "observability.enabled",
}

// NewRootCommand creates the library command. The console reads answers from in and writes to out.
func NewRootCommand(in io.Reader, out io.Writer, version string) *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "library",
		Short: "Interactive library catalog and lending console",
		Long: `library keeps a catalog of books and a register of patrons in memory
and lends and takes back copies through an interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			cfg = loaded

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), cfg, in, out, version)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.config/library/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.Bool("seed", false, "register a sample catalog and patrons at startup")
	flags.Bool("events", false, "publish domain events to the configured sink (JSON lines on the log output by default)")
	flags.Bool("observability-enabled", false, "enable OpenTelemetry metrics and tracing")

	root.AddCommand(newVersionCommand(version))

	return root
}

func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	if err := config.LoadEnvFiles(); err != nil {
		return nil, err
	}

	configFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	v, err := config.NewViper(configFile)
	if err != nil {
		return nil, err
	}

	if err = bindFlags(v, flags); err != nil {
		return nil, err
	}

	return config.Load(v)
}

// bindFlags binds only the flags set on the command line, so unset flags never shadow
// environment or file values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range boundFlags {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}

	return nil
}
