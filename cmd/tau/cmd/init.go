package cmd

import (
	"tau/cmd/tau/cmd/auth"
	"tau/cmd/tau/cmd/discipline"
	"tau/cmd/tau/cmd/schedule"
	"tau/cmd/tau/cmd/sync"
	"tau/cmd/tau/cmd/task"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.SignUpCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoAmICmd)

	rootCmd.AddCommand(discipline.DisciplineCmd)
	discipline.DisciplineCmd.AddCommand(discipline.AddCmd)
	discipline.DisciplineCmd.AddCommand(discipline.EditCmd)
	discipline.DisciplineCmd.AddCommand(discipline.RemoveCmd)
	discipline.DisciplineCmd.AddCommand(discipline.ListCmd)
	discipline.DisciplineCmd.AddCommand(discipline.ShowCmd)

	rootCmd.AddCommand(task.TaskCmd)
	task.TaskCmd.AddCommand(task.AddCmd)
	task.TaskCmd.AddCommand(task.EditCmd)
	task.TaskCmd.AddCommand(task.RemoveCmd)
	task.TaskCmd.AddCommand(task.ListCmd)
	task.TaskCmd.AddCommand(task.ShowCmd)
	task.TaskCmd.AddCommand(task.DoneCmd)

	rootCmd.AddCommand(schedule.ScheduleCmd)
	schedule.ScheduleCmd.AddCommand(schedule.AddCmd)
	schedule.ScheduleCmd.AddCommand(schedule.EditCmd)
	schedule.ScheduleCmd.AddCommand(schedule.RemoveCmd)
	schedule.ScheduleCmd.AddCommand(schedule.ListCmd)
	schedule.ScheduleCmd.AddCommand(schedule.ShowCmd)

	rootCmd.AddCommand(sync.SyncCmd)
	rootCmd.AddCommand(sync.DaemonCmd)
}
