package task

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tau/cmd/tau/cmd/render"
	"tau/cmd/tau/cmd/types"
	"tau/internal/domain/task"
	"tau/internal/utils/timefmt"
)

var (
	title        string
	description  string
	due          string
	disciplineID int64
	onlyOpen     bool
	onlyDone     bool
	undo         bool
)

// TaskCmd is the parent of the task commands.
var TaskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Manage tasks",
}

var AddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a task",
	Long: `Adds a task to a discipline. The discipline must already be known by the
server; run "tau sync" first if it was created offline.

--due accepts 2024-03-10T14:30:00, 2024-03-10 or phrases like "next friday 10am".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		dueDate, err := parseDue(due)
		if err != nil {
			return err
		}

		f := task.Fields{
			Title:        args[0],
			Description:  description,
			DueDate:      dueDate,
			DisciplineID: disciplineID,
		}

		id, err := app.Tasks().Create(cmd.Context(), ownerID, f, types.Opts(cmd).Policy())
		if id == 0 && err != nil {
			return err
		}
		return render.Mutation(os.Stdout, err, "task %d added", id)
	},
}

var EditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change a task",
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

		current, err := app.Tasks().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		f := current.Fields
		flags := cmd.Flags()
		if flags.Changed("title") {
			f.Title = title
		}
		if flags.Changed("description") {
			f.Description = description
		}
		if flags.Changed("due") {
			if f.DueDate, err = parseDue(due); err != nil {
				return err
			}
		}
		if flags.Changed("discipline") {
			f.DisciplineID = disciplineID
		}

		err = app.Tasks().Update(cmd.Context(), id, ownerID, f, types.Opts(cmd).Policy())
		return render.Mutation(os.Stdout, err, "task %d updated", id)
	},
}

var DoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a task as done",
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

		current, err := app.Tasks().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		f := current.Fields
		f.Completed = !undo

		err = app.Tasks().Update(cmd.Context(), id, ownerID, f, types.Opts(cmd).Policy())
		if undo {
			return render.Mutation(os.Stdout, err, "task %d reopened", id)
		}
		return render.Mutation(os.Stdout, err, "task %d done", id)
	},
}

var RemoveCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Remove a task",
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

		err = app.Tasks().Delete(cmd.Context(), id, types.Opts(cmd).Policy())
		return render.Mutation(os.Stdout, err, "task %d removed", id)
	},
}

var ListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks by due date",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ownerID, err := types.Owner(cmd)
		if err != nil {
			return err
		}

		views, err := app.Tasks().List(cmd.Context(), ownerID)
		if err != nil {
			return err
		}

		views = filter(views, disciplineID, onlyOpen, onlyDone)
		sortByDue(views)

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, views)
		}
		if len(views) == 0 {
			fmt.Println("no tasks")
			return nil
		}

		rows := make([][]string, 0, len(views))
		for _, v := range views {
			rows = append(rows, []string{
				strconv.FormatInt(v.LocalID, 10),
				v.Title,
				v.DisciplineName,
				dueText(v),
				render.Check(v.Completed),
				render.State(v.State),
			})
		}
		return render.Table(os.Stdout, []string{"ID", "TITLE", "DISCIPLINE", "DUE", "STATUS", "SYNC"}, rows)
	},
}

var ShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a task",
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

		v, err := app.Tasks().Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		if types.Opts(cmd).JSON {
			return render.JSON(os.Stdout, v)
		}
		return render.Fields(os.Stdout,
			"id", strconv.FormatInt(v.LocalID, 10),
			"title", v.Title,
			"description", v.Description,
			"discipline", v.DisciplineName,
			"due", dueText(v),
			"status", render.Check(v.Completed),
			"sync", render.State(v.State),
		)
	},
}

func parseDue(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	t, ok := timefmt.ParseInput(s, time.Now())
	if !ok {
		return "", fmt.Errorf("cannot understand due date %q", s)
	}
	return timefmt.FormatDate(t), nil
}

// dueText shows the parsed date, or the stored text when it does not parse.
func dueText(v task.View) string {
	if v.HasDue {
		return v.Due.Format("Mon 02 Jan 2006 15:04")
	}
	return v.DueDate
}

func filter(views []task.View, disciplineID int64, open, done bool) []task.View {
	out := views[:0]
	for _, v := range views {
		if disciplineID != 0 && v.DisciplineID != disciplineID {
			continue
		}
		if open && v.Completed {
			continue
		}
		if done && !v.Completed {
			continue
		}
		out = append(out, v)
	}
	return out
}

// sortByDue puts dated tasks first, earliest first.
func sortByDue(views []task.View) {
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.HasDue != b.HasDue {
			return a.HasDue
		}
		return a.Due.Before(b.Due)
	})
}

func init() {
	AddCmd.Flags().Int64VarP(&disciplineID, "discipline", "d", 0, "local id of the discipline")
	_ = AddCmd.MarkFlagRequired("discipline")
	EditCmd.Flags().Int64VarP(&disciplineID, "discipline", "d", 0, "local id of the discipline")
	ListCmd.Flags().Int64VarP(&disciplineID, "discipline", "d", 0, "only tasks of this discipline")

	for _, c := range []*cobra.Command{AddCmd, EditCmd} {
		c.Flags().StringVar(&description, "description", "", "task description")
		c.Flags().StringVar(&due, "due", "", "due date")
	}
	EditCmd.Flags().StringVar(&title, "title", "", "task title")

	ListCmd.Flags().BoolVar(&onlyOpen, "open", false, "only open tasks")
	ListCmd.Flags().BoolVar(&onlyDone, "done", false, "only finished tasks")
	ListCmd.MarkFlagsMutuallyExclusive("open", "done")

	DoneCmd.Flags().BoolVar(&undo, "undo", false, "reopen the task")
}
