package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// StatusCmd prints a snapshot of the node's chain position and network view.
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the node's sync and network status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		established, err := c.IsConsensusEstablished(ctx)
		if err != nil {
			return err
		}
		height, err := c.GetBlockNumber(ctx)
		if err != nil {
			return err
		}
		batch, err := c.GetBatchNumber(ctx)
		if err != nil {
			return err
		}
		epoch, err := c.GetEpochNumber(ctx)
		if err != nil {
			return err
		}
		peers, err := c.GetPeerCount(ctx)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(map[string]interface{}{
			"consensusEstablished": established,
			"blockNumber":          height,
			"batchNumber":          batch,
			"epochNumber":          epoch,
			"peerCount":            peers,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
