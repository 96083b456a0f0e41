package auth

import (
	"os"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove local data",
	Long: `Ends the session and deletes every discipline, task and schedule
stored on this device. Changes that never reached the server are lost.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		if err := app.Logout(cmd.Context()); err != nil {
			return err
		}

		render.Success(os.Stdout, "logged out")
		return nil
	},
}
