package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// BlockCmd fetches a block by height or hash, defaulting to the chain head.
var BlockCmd = &cobra.Command{
	Use:   "block [height-or-hash]",
	Short: "Print a block as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		includeBody := viper.GetBool("include-body")

		var block *types.Block
		switch {
		case len(args) == 0:
			block, err = c.GetLatestBlock(ctx, includeBody)
		default:
			if height, convErr := strconv.ParseInt(args[0], 10, 64); convErr == nil {
				block, err = c.GetBlockByNumber(ctx, height, includeBody)
			} else {
				block, err = c.GetBlockByHash(ctx, args[0], includeBody)
			}
		}
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(block, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	BlockCmd.Flags().Bool("include-body", false, "include full transaction bodies")
}
