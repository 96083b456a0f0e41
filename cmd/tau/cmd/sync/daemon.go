package sync

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
)

var interval time.Duration

var DaemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Synchronize in the background until interrupted",
	Long: `Runs a synchronization right away and then every --interval until
Ctrl+C. Runs that would overlap a running one are skipped.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, _, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		every := interval
		if every <= 0 {
			every = app.Config().SyncEvery()
		}
		if every <= 0 {
			return fmt.Errorf("sync interval is disabled, pass --interval")
		}

		if res, err := app.Sync(cmd.Context()); err != nil {
			render.Warn(os.Stdout, "initial sync failed: %v", err)
		} else if !res.Success() {
			render.Warn(os.Stdout, "initial sync finished with %d error(s)", len(res.Errors))
		}

		if err := app.StartAutoSync(every); err != nil {
			return err
		}
		render.Success(os.Stdout, "synchronizing every %s, press Ctrl+C to stop", every)

		<-cmd.Context().Done()
		app.StopAutoSync()

		render.Success(os.Stdout, "stopped")
		return nil
	},
}

func init() {
	DaemonCmd.Flags().DurationVarP(&interval, "interval", "i", 0, "time between runs (default from SYNC_INTERVAL_SECONDS)")
}
