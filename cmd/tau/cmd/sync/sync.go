package sync

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
	"tau/internal/app/client"
)

var (
	pullOnly bool
	pushOnly bool
)

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize with the server",
	Long: `Downloads disciplines, schedules and tasks from the server into this
device, then sends every change the server has not seen yet.

Local records missing on the server are kept. A failure of one step is
reported and does not stop the others.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		opts, err := options(pullOnly, pushOnly)
		if err != nil {
			return err
		}

		res, err := app.SyncWith(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, res)
		}
		return render.SyncResult(os.Stdout, res)
	},
}

func options(pull, push bool) (client.SyncOptions, error) {
	switch {
	case pull && push:
		return client.SyncOptions{}, fmt.Errorf("--pull-only and --push-only exclude each other")
	case pull:
		return client.SyncOptions{Pull: true}, nil
	case push:
		return client.SyncOptions{Push: true}, nil
	default:
		return client.FullSync, nil
	}
}

func init() {
	SyncCmd.Flags().BoolVar(&pullOnly, "pull-only", false, "only download from the server")
	SyncCmd.Flags().BoolVar(&pushOnly, "push-only", false, "only send local changes")
}
