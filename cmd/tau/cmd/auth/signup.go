package auth

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
)

var signUpEmail string

var SignUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account on the server",
	Long: `Creates a new account. The password needs at least 8 characters,
one upper-case letter and one digit.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		email, password, err := credentials(signUpEmail)
		if err != nil {
			return err
		}

		confirm, err := readPassword("Repeat password: ")
		if err != nil {
			return err
		}
		if confirm != password {
			return fmt.Errorf("passwords do not match")
		}

		u, err := app.SignUp(cmd.Context(), email, password)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, u)
		}
		render.Success(os.Stdout, "account %s created, log in with: tau auth login", email)
		return nil
	},
}

func init() {
	SignUpCmd.Flags().StringVarP(&signUpEmail, "email", "e", "", "account email")
}
