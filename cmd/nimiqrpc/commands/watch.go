package commands

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// WatchCmd streams new head blocks until interrupted.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream head blocks as they are produced",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var filter types.BlockPredicate
		switch {
		case viper.GetBool("election-only"):
			filter = types.ElectionBlocks
		case viper.GetBool("macro-only"):
			filter = types.MacroBlocks
		}

		blocks := make(chan *types.Block, 64)
		sub, err := c.SubscribeForHeadBlock(ctx, viper.GetBool("include-body"), func(b *types.Block) {
			select {
			case blocks <- b:
			case <-ctx.Done():
			}
		}, filter)
		if err != nil {
			return err
		}
		defer sub.Close()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case b := <-blocks:
					out, err := json.Marshal(b)
					if err != nil {
						return err
					}
					fmt.Println(string(out))
				}
			}
		})
		g.Go(func() error {
			<-ctx.Done()
			sub.Close()
			return nil
		})
		return g.Wait()
	},
}

func init() {
	WatchCmd.Flags().Bool("include-body", false, "include full transaction bodies")
	WatchCmd.Flags().Bool("macro-only", false, "only print macro blocks")
	WatchCmd.Flags().Bool("election-only", false, "only print election blocks")
}
