package main

import (
	"os"

	"github.com/blouflashdb/nimiq-rpc/cmd/nimiqrpc/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
