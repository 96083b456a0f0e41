package schedule

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
	"tau/internal/domain/schedule"
	"tau/internal/utils/timefmt"
)

var (
	day          string
	start        string
	end          string
	disciplineID int64
)

// ScheduleCmd is the parent of the weekly schedule commands.
var ScheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"s"},
	Short:   "Manage the weekly class schedule",
}

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a class slot",
	Long: `Adds a weekly class slot. --day takes 0-6 (0 is Sunday) or a weekday name
such as "mon" or "friday". Times are HH:MM.`,
	Example: `  tau schedule add --day mon --start 08:00 --end 09:40 --discipline 1`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		f, err := fields(schedule.Fields{DisciplineID: disciplineID}, cmd, true)
		if err != nil {
			return err
		}

		id, err := app.Schedules().Create(cmd.Context(), ownerID, f, types.Opts(cmd).Policy())
		if id == 0 && err != nil {
			return err
		}
		return render.Mutation(os.Stdout, err, "class slot %d added", id)
	},
}

var EditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change a class slot",
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

		current, err := app.Schedules().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		f := current.Fields
		if cmd.Flags().Changed("discipline") {
			f.DisciplineID = disciplineID
		}
		if f, err = fields(f, cmd, false); err != nil {
			return err
		}

		err = app.Schedules().Update(cmd.Context(), id, ownerID, f, types.Opts(cmd).Policy())
		return render.Mutation(os.Stdout, err, "class slot %d updated", id)
	},
}

var RemoveCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Remove a class slot",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := types.Owner(cmd)
		if err != nil {
			return err
		}
		id, err := types.ParseID(args[0])
		if err != nil {
			return err
		}

		err = app.Schedules().Delete(cmd.Context(), id, types.Opts(cmd).Policy())
		return render.Mutation(os.Stdout, err, "class slot %d removed", id)
	},
}

var ListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list", "week"},
	Short:   "Show the week",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		views, err := app.Schedules().List(cmd.Context(), ownerID)
		if err != nil {
			return err
		}
		sortWeek(views)

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, views)
		}
		if len(views) == 0 {
			fmt.Println("no classes scheduled")
			return nil
		}

		rows := make([][]string, 0, len(views))
		for _, v := range views {
			rows = append(rows, []string{
				strconv.FormatInt(v.LocalID, 10),
				v.DayName,
				v.Start + "-" + v.End,
				v.DisciplineName,
				render.State(v.State),
			})
		}
		return render.Table(os.Stdout, []string{"ID", "DAY", "TIME", "DISCIPLINE", "SYNC"}, rows)
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a class slot",
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

		v, err := app.Schedules().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, v)
		}
		return render.Fields(os.Stdout,
			"id", strconv.FormatInt(v.LocalID, 10),
			"day", v.DayName,
			"start", v.Start,
			"end", v.End,
			"discipline", v.DisciplineName,
			"sync", render.State(v.State),
		)
	},
}

// fields applies the --day, --start and --end flags to f. With required set
// every one of them must be given.
func fields(f schedule.Fields, cmd *cobra.Command, required bool) (schedule.Fields, error) {
	flags := cmd.Flags()

	if required || flags.Changed("day") {
		d, ok := schedule.ParseDay(day)
		if !ok {
			return f, fmt.Errorf("invalid day %q", day)
		}
		f.DayOfWeek = d
	}
	if required || flags.Changed("start") {
		t, err := clock(start)
		if err != nil {
			return f, err
		}
		f.StartTime = t
	}
	if required || flags.Changed("end") {
		t, err := clock(end)
		if err != nil {
			return f, err
		}
		f.EndTime = t
	}
	return f, nil
}

func clock(s string) (string, error) {
	t := timefmt.NormalizeClock(s)
	if len(t) != len(timefmt.ClockLayout) || t[2] != ':' {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t, nil
}

func sortWeek(views []schedule.View) {
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].DayOfWeek != views[j].DayOfWeek {
			return views[i].DayOfWeek < views[j].DayOfWeek
		}
		return views[i].Start < views[j].Start
	})
}

func init() {
	for _, c := range []*cobra.Command{AddCmd, EditCmd} {
		c.Flags().StringVar(&day, "day", "", "weekday, 0-6 or name")
		c.Flags().StringVar(&start, "start", "", "start time, HH:MM")
		c.Flags().StringVar(&end, "end", "", "end time, HH:MM")
		c.Flags().Int64VarP(&disciplineID, "discipline", "d", 0, "local id of the discipline")
	}
	_ = AddCmd.MarkFlagRequired("day")
	_ = AddCmd.MarkFlagRequired("start")
	_ = AddCmd.MarkFlagRequired("end")
	_ = AddCmd.MarkFlagRequired("discipline")
}
