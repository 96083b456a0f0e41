package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tau/internal/domain/task"
)

func view(id int64, disciplineID int64, completed bool, due string) task.View {
	v := task.View{Task: task.Task{LocalID: id, Fields: task.Fields{
		Completed:    completed,
		DueDate:      due,
		DisciplineID: disciplineID,
	}}}
	if due != "" {
		v.Due, _ = time.Parse("2006-01-02", due)
		v.HasDue = true
	}
	return v
}

func ids(views []task.View) []int64 {
	out := make([]int64, 0, len(views))
	for _, v := range views {
		out = append(out, v.LocalID)
	}
	return out
}

func TestFilter(t *testing.T) {
	all := func() []task.View {
		return []task.View{
			view(1, 10, false, ""),
			view(2, 10, true, ""),
			view(3, 20, false, ""),
		}
	}

	assert.Equal(t, []int64{1, 2, 3}, ids(filter(all(), 0, false, false)))
	assert.Equal(t, []int64{1, 2}, ids(filter(all(), 10, false, false)))
	assert.Equal(t, []int64{1, 3}, ids(filter(all(), 0, true, false)))
	assert.Equal(t, []int64{2}, ids(filter(all(), 0, false, true)))
}

func TestSortByDue(t *testing.T) {
	views := []task.View{
		view(1, 0, false, ""),
		view(2, 0, false, "2024-05-01"),
		view(3, 0, false, "2024-04-01"),
	}

	sortByDue(views)

	assert.Equal(t, []int64{3, 2, 1}, ids(views))
}

func TestParseDue(t *testing.T) {
	got, err := parseDue("2024-03-10T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10T14:30:00", got)

	got, err = parseDue("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseDue("zzz qqq")
	assert.Error(t, err)
}

func TestDueText(t *testing.T) {
	assert.Equal(t, "soon", dueText(task.View{Task: task.Task{Fields: task.Fields{DueDate: "soon"}}}))
	assert.Equal(t, "Sun 10 Mar 2024 00:00", dueText(view(1, 0, false, "2024-03-10")))
}
