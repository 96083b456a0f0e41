// Package render prints command output as colored text, tables or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"tau/internal/domain/sync"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes rows aligned under headers.
func Table(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Fields prints label/value pairs, one per line.
func Fields(w io.Writer, pairs ...string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s:\t%s\n", bold(pairs[i]), pairs[i+1])
	}
	return tw.Flush()
}

func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, green("✓ ")+fmt.Sprintf(format, args...))
}

func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, yellow("! ")+fmt.Sprintf(format, args...))
}

func Error(w io.Writer, err error) {
	fmt.Fprintln(w, red("error: ")+err.Error())
}

// State renders a sync state; the remote id follows in brackets.
func State(s sync.State) string {
	label := s.Kind().String()
	if id, ok := s.RemoteID(); ok {
		label = fmt.Sprintf("%s [%d]", label, id)
	}
	switch s.Kind() {
	case sync.KindSynced:
		return green(label)
	case sync.KindPending:
		return yellow(label)
	default:
		return red(label)
	}
}

// Check renders a completion flag.
func Check(done bool) string {
	if done {
		return green("done")
	}
	return "open"
}

// Swatch prints the color code in its own color when it is a hex code.
func Swatch(hex string) string {
	var r, g, b int
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil || len(hex) < 7 {
		return hex
	}
	return color.RGB(r, g, b).Sprint("■ ") + hex
}

// Mutation reports the outcome of a local write followed by a push. A push
// that failed after the local write is shown as a warning and is not an error
// of the command.
func Mutation(w io.Writer, err error, format string, args ...any) error {
	if err != nil && !errors.Is(err, sync.ErrPushFailed) {
		return err
	}
	Success(w, format, args...)
	if err != nil {
		Warn(w, "saved locally, not synced: %v", err)
	}
	return nil
}

// SyncResult prints the per-entity statistics of a synchronization.
func SyncResult(w io.Writer, res *sync.Result) error {
	rows := [][]string{
		entityRow("disciplines", res.Disciplines),
		entityRow("tasks", res.Tasks),
		entityRow("schedules", res.Schedules),
	}
	if err := Table(w, []string{"ENTITY", "FETCHED", "UPDATED", "INSERTED", "PUSHED", "SKIPPED", "FAILED"}, rows); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nfinished in %s\n", res.Duration.Round(time.Millisecond))
	if res.Success() {
		Success(w, "sync complete")
		return nil
	}

	Warn(w, "sync finished with %d error(s)", len(res.Errors))
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  • %s\n", e)
	}
	return nil
}

func entityRow(name string, r sync.EntityResult) []string {
	return []string{
		name,
		fmt.Sprint(r.Pull.Fetched),
		fmt.Sprint(r.Pull.Updated),
		fmt.Sprint(r.Pull.Inserted),
		fmt.Sprint(r.Push.Pushed),
		fmt.Sprint(r.Push.Skipped),
		fmt.Sprint(r.Push.Failed),
	}
}
