package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
	"github.com/blouflashdb/nimiq-rpc/rpc/client"
)

const envPrefix = "NIMIQ"

var logger = log.NewNopLogger()

// RootCmd is the entry point of the nimiqrpc command line tool.
var RootCmd = &cobra.Command{
	Use:          "nimiqrpc",
	Short:        "Command line client for the JSON-RPC interface of an Albatross node",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		l, err := log.NewDefaultLogger(viper.GetString("log-format"), viper.GetString("log-level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	RootCmd.PersistentFlags().String("remote", "http://localhost:8648", "node RPC endpoint (scheme://host:port)")
	RootCmd.PersistentFlags().String("log-level", "info", "log level (debug|info|error)")
	RootCmd.PersistentFlags().String("log-format", "plain", "log format (plain|json)")

	RootCmd.AddCommand(StatusCmd, BlockCmd, WatchCmd)
}

func newClient() (*client.Client, error) {
	return client.New(viper.GetString("remote"), client.WithLogger(logger))
}
