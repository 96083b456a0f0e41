package auth

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
)

type whoAmI struct {
	UserID  int64  `json:"user_id"`
	Server  string `json:"server"`
	Storage string `json:"storage"`
}

var WhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		info := whoAmI{
			UserID:  ownerID,
			Server:  app.Config().BaseURL(),
			Storage: app.StorageKind(),
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, info)
		}
		return render.Fields(os.Stdout,
			"user id", strconv.FormatInt(info.UserID, 10),
			"server", info.Server,
			"storage", info.Storage,
		)
	},
}
