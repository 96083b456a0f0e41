package auth

import (
	"os"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
)

var loginEmail string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and download your planner",
	Long: `Authenticates against the server, remembers the user on this device
and synchronizes. A failed synchronization does not undo the login.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		email, password, err := credentials(loginEmail)
		if err != nil {
			return err
		}

		u, err := app.Login(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, u)
		}
		render.Success(os.Stdout, "logged in as %s", u.Email)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
}
