package schedule

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tau/internal/domain/schedule"
)

func TestClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:00", want: "08:00"},
		{in: "08:00:00", want: "08:00"},
		{in: "8am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := clock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFields_OnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&day, "day", "", "")
	cmd.Flags().StringVar(&start, "start", "", "")
	cmd.Flags().StringVar(&end, "end", "", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--day", "fri", "--end", "11:30"}))

	current := schedule.Fields{DayOfWeek: 1, StartTime: "10:00", EndTime: "11:00", DisciplineID: 4}

	got, err := fields(current, cmd, false)
	require.NoError(t, err)
	assert.Equal(t, schedule.Fields{DayOfWeek: 5, StartTime: "10:00", EndTime: "11:30", DisciplineID: 4}, got)

	_, err = fields(current, cmd, true)
	assert.Error(t, err, "start is required")
}

func TestSortWeek(t *testing.T) {
	views := []schedule.View{
		{Schedule: schedule.Schedule{LocalID: 1, Fields: schedule.Fields{DayOfWeek: 3}}, Start: "08:00"},
		{Schedule: schedule.Schedule{LocalID: 2, Fields: schedule.Fields{DayOfWeek: 1}}, Start: "10:00"},
		{Schedule: schedule.Schedule{LocalID: 3, Fields: schedule.Fields{DayOfWeek: 1}}, Start: "08:00"},
	}

	sortWeek(views)

	got := []int64{views[0].LocalID, views[1].LocalID, views[2].LocalID}
	assert.Equal(t, []int64{3, 2, 1}, got)
}
