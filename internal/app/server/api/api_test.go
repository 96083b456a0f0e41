package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"tau/internal/app/client/remote"
	healthAPI "tau/internal/app/server/api/http/health"
	"tau/internal/app/server/store"
	"tau/internal/domain/discipline"
	"tau/internal/domain/schedule"
	"tau/internal/domain/sync"
	"tau/internal/domain/task"
	"tau/internal/domain/user"
)

func newTestAPI(t *testing.T) (*Server, *remote.Client) {
	t.Helper()
	srv := New(store.New(), slog.Default())
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return srv, remote.New(ts.URL, slog.Default())
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	code, ok := sync.StatusCode(err)
	require.True(t, ok, "expected a status error, got %v", err)
	return code
}

func TestAccounts(t *testing.T) {
	_, c := newTestAPI(t)
	ctx := context.Background()
	creds := user.Credentials{Email: "ana@example.com", Password: "Secret123"}

	created, err := c.SignUp(ctx, creds)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	_, err = c.SignUp(ctx, creds)
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	_, err = c.SignUp(ctx, user.Credentials{Email: "bob@example.com", Password: "weak"})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))

	logged, err := c.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, created.ID, logged.ID)

	_, err = c.Login(ctx, user.Credentials{Email: creds.Email, Password: "Wrong1234"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = c.Login(ctx, user.Credentials{Email: "nobody@example.com", Password: "Secret123"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestDisciplines(t *testing.T) {
	_, c := newTestAPI(t)
	ctx := context.Background()

	created, err := c.CreateDiscipline(ctx, discipline.Request{OwnerID: 1, Name: "Calculus", Color: "#FF0000"})
	require.NoError(t, err)
	_, err = c.CreateDiscipline(ctx, discipline.Request{OwnerID: 2, Name: "Physics"})
	require.NoError(t, err)

	list, err := c.ListDisciplines(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	updated, err := c.UpdateDiscipline(ctx, created.ID, discipline.Request{OwnerID: 1, Name: "Calculus II"})
	require.NoError(t, err)
	assert.Equal(t, "Calculus II", updated.Name)

	_, err = c.UpdateDiscipline(ctx, 999, discipline.Request{OwnerID: 1, Name: "Ghost"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	require.NoError(t, c.DeleteDiscipline(ctx, created.ID))
	err = c.DeleteDiscipline(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestTasksFilter(t *testing.T) {
	_, c := newTestAPI(t)
	ctx := context.Background()

	_, err := c.CreateTask(ctx, task.Request{OwnerID: 1, Title: "Homework", DisciplineID: 7, DueDate: "2024-03-10T14:30:00"})
	require.NoError(t, err)
	_, err = c.CreateTask(ctx, task.Request{OwnerID: 1, Title: "Essay", DisciplineID: 8, Completed: true})
	require.NoError(t, err)

	all, err := c.ListTasks(ctx, task.Filter{OwnerID: 1})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	done := true
	completed, err := c.ListTasks(ctx, task.Filter{OwnerID: 1, Completed: &done})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "Essay", completed[0].Title)

	byDiscipline, err := c.ListTasks(ctx, task.Filter{OwnerID: 1, DisciplineID: 7, From: "2024-03-10", To: "2024-03-10"})
	require.NoError(t, err)
	require.Len(t, byDiscipline, 1)
	assert.Equal(t, "Homework", byDiscipline[0].Title)
}

func TestSchedulesStoreSeconds(t *testing.T) {
	_, c := newTestAPI(t)
	ctx := context.Background()

	created, err := c.CreateSchedule(ctx, schedule.Request{OwnerID: 1, DisciplineID: 7, DayOfWeek: 1, StartTime: "08:00", EndTime: "09:40"})
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", created.StartTime)

	_, err = c.CreateSchedule(ctx, schedule.Request{OwnerID: 1, DisciplineID: 7, DayOfWeek: 9, StartTime: "08:00", EndTime: "09:40"})
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
}

func TestSetFailure(t *testing.T) {
	srv, c := newTestAPI(t)
	ctx := context.Background()

	srv.SetFailure(http.StatusInternalServerError)
	_, err := c.ListDisciplines(ctx, 1)
	assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var status healthAPI.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, healthAPI.StatusFailing, status.Status)
	assert.Equal(t, http.StatusInternalServerError, status.InjectedStatus)

	srv.SetFailure(0)
	_, err = c.ListDisciplines(ctx, 1)
	assert.NoError(t, err)
}
