package discipline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
	"tau/internal/domain/discipline"
)

var (
	teacher string
	room    string
	color   string
	name    string
)

// DisciplineCmd is the parent of the discipline commands.
var DisciplineCmd = &cobra.Command{
	Use:     "discipline",
	Aliases: []string{"disc", "d"},
	Short:   "Manage class disciplines",
}

var AddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a discipline",
	Long: `Adds a discipline. The color may be a hex code (#4169E1) or one of:
pink, red, orange, yellow, green, mint, blue, cyan, purple, lavender, salmon, peach.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		f := discipline.Fields{
			Name:    args[0],
			Teacher: teacher,
			Room:    room,
			Color:   discipline.ColorHex(color),
		}

		id, err := app.Disciplines().Create(cmd.Context(), ownerID, f, types.Opts(cmd).Policy())
		if id == 0 && err != nil {
			return err
		}
		return render.Mutation(os.Stdout, err, "discipline %d added", id)
	},
}

var EditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change a discipline",
	Long:  `Changes the fields given as flags and keeps the others.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}
		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		current, err := app.Disciplines().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		f := current.Fields
		flags := cmd.Flags()
		if flags.Changed("name") {
			f.Name = name
		}
		if flags.Changed("teacher") {
			f.Teacher = teacher
		}
		if flags.Changed("room") {
			f.Room = room
		}
		if flags.Changed("color") {
			f.Color = discipline.ColorHex(color)
		}

		err = app.Disciplines().Update(cmd.Context(), id, ownerID, f, types.Opts(cmd).Policy())
		return render.Mutation(os.Stdout, err, "discipline %d updated", id)
	},
}

var RemoveCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Remove a discipline",
	Long: `Removes the discipline from this device and from the server. Its tasks
and schedules are kept and show "No discipline".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.Owner(cmd)
		if err != nil {
			return err
		}
		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		err = app.Disciplines().Delete(cmd.Context(), id, types.Opts(cmd).Policy())
		return render.Mutation(os.Stdout, err, "discipline %d removed", id)
	},
}

var ListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List disciplines",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		list, err := app.Disciplines().List(cmd.Context(), ownerID)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, list)
		}
		if len(list) == 0 {
			fmt.Println("no disciplines yet, add one with: tau discipline add NAME")
			return nil
		}

		rows := make([][]string, 0, len(list))
		for _, d := range list {
			rows = append(rows, []string{
				strconv.FormatInt(d.LocalID, 10),
				d.Name,
				d.Teacher,
				d.Room,
				render.Swatch(d.Color),
				render.State(d.State),
			})
		}
		return render.Table(os.Stdout, []string{"ID", "NAME", "TEACHER", "ROOM", "COLOR", "SYNC"}, rows)
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a discipline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.Owner(cmd)
		if err != nil {
			return err
		}
		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		d, err := app.Disciplines().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, d)
		}
		return render.Fields(os.Stdout,
			"id", strconv.FormatInt(d.LocalID, 10),
			"name", d.Name,
			"teacher", d.Teacher,
			"room", d.Room,
			"color", render.Swatch(d.Color),
			"sync", render.State(d.State),
		)
	},
}

func init() {
	for _, c := range []*cobra.Command{AddCmd, EditCmd} {
		c.Flags().StringVarP(&teacher, "teacher", "t", "", "teacher name")
		c.Flags().StringVarP(&room, "room", "r", "", "class room")
		c.Flags().StringVarP(&color, "color", "c", "", "color name or hex code")
	}
	EditCmd.Flags().StringVarP(&name, "name", "n", "", "discipline name")
}
