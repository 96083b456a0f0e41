package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent of the account commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your account",
	Long:  `Sign up, log in, log out and show the current user.`,
}
