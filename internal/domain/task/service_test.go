package task_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"tau/internal/app/client/storage/memory"
	"tau/internal/domain/discipline"
	"tau/internal/domain/sync"
	"tau/internal/domain/task"
)

type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) CreateTask(ctx context.Context, req task.Request) (task.Response, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(task.Response), args.Error(1)
}

func (m *MockRemote) ListTasks(ctx context.Context, filter task.Filter) ([]task.Response, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]task.Response), args.Error(1)
}

func (m *MockRemote) UpdateTask(ctx context.Context, remoteID int64, req task.Request) (task.Response, error) {
	args := m.Called(ctx, remoteID, req)
	return args.Get(0).(task.Response), args.Error(1)
}

func (m *MockRemote) DeleteTask(ctx context.Context, remoteID int64) error {
	args := m.Called(ctx, remoteID)
	return args.Error(0)
}

const owner int64 = 5

type fixture struct {
	service     *task.Service
	store       task.Store
	disciplines discipline.Store
	remote      *MockRemote
}

func setup(t *testing.T) fixture {
	t.Helper()
	st := memory.New()
	f := fixture{
		store:       memory.NewTaskRepository(st),
		disciplines: memory.NewDisciplineRepository(st),
		remote:      new(MockRemote),
	}
	pusher := sync.NewPusher(time.Second, slog.Default())
	f.service = task.NewService(f.store, f.disciplines, f.remote, pusher, slog.Default())
	return f
}

func (f fixture) discipline(t *testing.T, name string, state sync.State) int64 {
	t.Helper()
	id, err := f.disciplines.Insert(context.Background(), owner, discipline.Fields{Name: name, Color: "#4169E1"}, state)
	require.NoError(t, err)
	return id
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	dID := f.discipline(t, "Calculus", sync.Synced(70))

	fields := task.Fields{Title: "Homework", DueDate: "2024-03-10T14:30:00", DisciplineID: dID}
	f.remote.On("CreateTask", mock.Anything, task.NewRequest(owner, fields, 70)).
		Return(task.Response{ID: 300}, nil)

	id, err := f.service.Create(ctx, owner, fields, sync.Await)
	require.NoError(t, err)

	v, err := f.service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, sync.Synced(300), v.State)
	assert.Equal(t, "Calculus", v.DisciplineName)
	assert.Equal(t, int64(70), v.DisciplineRemoteID)
	assert.True(t, v.HasDue)
	assert.Equal(t, 14, v.Due.Hour())

	f.remote.AssertExpectations(t)
}

func TestService_Create_DisciplineNotSynced(t *testing.T) {
	tests := []struct {
		name  string
		state *sync.State
	}{
		{name: "unsynced discipline", state: ptr(sync.Unsynced())},
		{name: "missing discipline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := setup(t)

			var dID int64 = 42
			if tt.state != nil {
				dID = f.discipline(t, "Draft", *tt.state)
			}

			_, err := f.service.Create(ctx, owner, task.Fields{Title: "Essay", DisciplineID: dID}, sync.Await)
			assert.ErrorIs(t, err, task.ErrDisciplineNotSynced)

			list, err := f.store.ListByOwner(ctx, owner)
			require.NoError(t, err)
			assert.Empty(t, list)
			f.remote.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update(t *testing.T) {
	failure := &sync.StatusError{Code: http.StatusBadGateway}

	tests := []struct {
		name       string
		state      sync.State
		remoteErr  error
		wantState  sync.State
		wantErr    bool
		wantCreate int
		wantUpdate int
	}{
		{name: "unsynced task is created remotely", state: sync.Unsynced(), wantState: sync.Synced(400), wantCreate: 1},
		{name: "synced task is updated remotely", state: sync.Synced(12), wantState: sync.Synced(12), wantUpdate: 1},
		{name: "pending task is updated remotely", state: sync.Pending(12), wantState: sync.Synced(12), wantUpdate: 1},
		{name: "synced task turns pending on failure", state: sync.Synced(12), remoteErr: failure, wantState: sync.Pending(12), wantErr: true, wantUpdate: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := setup(t)
			dID := f.discipline(t, "Physics", sync.Synced(70))

			id, err := f.store.Insert(ctx, owner, task.Fields{Title: "Lab", DisciplineID: dID}, tt.state)
			require.NoError(t, err)

			edited := task.Fields{Title: "Lab report", DueDate: "2024-05-02T09:00:00", DisciplineID: dID}
			req := task.NewRequest(owner, edited, 70)
			f.remote.On("CreateTask", mock.Anything, req).Return(task.Response{ID: 400}, tt.remoteErr)
			f.remote.On("UpdateTask", mock.Anything, int64(12), req).Return(task.Response{ID: 12}, tt.remoteErr)

			err = f.service.Update(ctx, id, owner, edited, sync.Await)
			if tt.wantErr {
				assert.ErrorIs(t, err, sync.ErrPushFailed)
			} else {
				assert.NoError(t, err)
			}

			got, err := f.store.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, "Lab report", got.Title)
			assert.Equal(t, tt.wantState, got.State)

			f.remote.AssertNumberOfCalls(t, "CreateTask", tt.wantCreate)
			f.remote.AssertNumberOfCalls(t, "UpdateTask", tt.wantUpdate)
		})
	}
}

func TestService_Update_OtherOwner(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	dID := f.discipline(t, "Physics", sync.Synced(70))

	id, err := f.store.Insert(ctx, owner+1, task.Fields{Title: "Theirs", DisciplineID: dID}, sync.Synced(3))
	require.NoError(t, err)

	err = f.service.Update(ctx, id, owner, task.Fields{Title: "Mine", DisciplineID: dID}, sync.Await)
	assert.ErrorIs(t, err, task.ErrNotFound)

	got, err := f.store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Theirs", got.Title)
	f.remote.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_DisciplineLostRemoteID(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	dID := f.discipline(t, "History", sync.Unsynced())
	id, err := f.store.Insert(ctx, owner, task.Fields{Title: "Read", DisciplineID: dID}, sync.Synced(8))
	require.NoError(t, err)

	err = f.service.Update(ctx, id, owner, task.Fields{Title: "Read ch. 2", DisciplineID: dID}, sync.Await)
	assert.ErrorIs(t, err, sync.ErrParentNotSynced)

	got, err := f.store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Read ch. 2", got.Title)
	assert.Equal(t, sync.Pending(8), got.State)
}

func TestService_Delete_RemoteFailure(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	dID := f.discipline(t, "Art", sync.Synced(1))
	id, err := f.store.Insert(ctx, owner, task.Fields{Title: "Sketch", DisciplineID: dID}, sync.Synced(11))
	require.NoError(t, err)

	f.remote.On("DeleteTask", mock.Anything, int64(11)).
		Return(&sync.StatusError{Code: http.StatusInternalServerError})

	err = f.service.Delete(ctx, id, sync.Await)
	assert.ErrorIs(t, err, sync.ErrPushFailed)

	_, err = f.store.Get(ctx, id)
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestService_List_Placeholder(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	dID := f.discipline(t, "Gone", sync.Synced(1))
	_, err := f.store.Insert(ctx, owner, task.Fields{Title: "Orphan", DisciplineID: dID, DueDate: "soon"}, sync.Synced(2))
	require.NoError(t, err)
	require.NoError(t, f.disciplines.Delete(ctx, dID))

	views, err := f.service.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, discipline.PlaceholderName, views[0].DisciplineName)
	assert.Equal(t, discipline.PlaceholderColor, views[0].DisciplineColor)
	assert.False(t, views[0].HasDue)
}

func TestService_PullFromRemote(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	dID := f.discipline(t, "Calculus", sync.Synced(70))
	known, err := f.store.Insert(ctx, owner, task.Fields{Title: "Old", DisciplineID: dID}, sync.Synced(300))
	require.NoError(t, err)
	lost, err := f.store.Insert(ctx, owner, task.Fields{Title: "Quiz", DisciplineID: dID}, sync.Unsynced())
	require.NoError(t, err)

	f.remote.On("ListTasks", mock.Anything, task.Filter{OwnerID: owner}).Return([]task.Response{
		{ID: 300, OwnerID: owner, Title: "New", Completed: true, DisciplineID: 70},
		{ID: 301, OwnerID: owner, Title: "Quiz", DisciplineID: 70},
		{ID: 302, OwnerID: owner, Title: "Unknown parent", DisciplineID: 999},
	}, nil)

	stats, err := f.service.PullFromRemote(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, sync.PullStats{Fetched: 3, Updated: 1, Inserted: 2}, stats)

	views, err := f.service.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, views, 4, "a task whose create push was lost comes back as a second row")

	byID := make(map[int64]task.View)
	for _, v := range views {
		byID[v.LocalID] = v
	}

	assert.Equal(t, "New", byID[known].Title)
	assert.True(t, byID[known].Completed)
	assert.Equal(t, sync.KindUnsynced, byID[lost].State.Kind())

	var orphan task.View
	for _, v := range views {
		if v.RemoteID() == 302 {
			orphan = v
		}
	}
	assert.Equal(t, discipline.PlaceholderName, orphan.DisciplineName)
}

func TestService_PushPending(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	synced := f.discipline(t, "Synced", sync.Synced(70))
	draft := f.discipline(t, "Draft", sync.Unsynced())

	_, err := f.store.Insert(ctx, owner, task.Fields{Title: "Ready", DisciplineID: synced}, sync.Unsynced())
	require.NoError(t, err)
	_, err = f.store.Insert(ctx, owner, task.Fields{Title: "Blocked", DisciplineID: draft}, sync.Unsynced())
	require.NoError(t, err)
	_, err = f.store.Insert(ctx, owner, task.Fields{Title: "Failing", DisciplineID: synced}, sync.Pending(9))
	require.NoError(t, err)

	f.remote.On("CreateTask", mock.Anything, mock.Anything).Return(task.Response{ID: 400}, nil)
	f.remote.On("UpdateTask", mock.Anything, int64(9), mock.Anything).
		Return(task.Response{}, sync.ErrTransport)

	stats, err := f.service.PushPending(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, sync.PushStats{Attempted: 3, Pushed: 1, Skipped: 1, Failed: 1}, stats)

	f.remote.AssertNumberOfCalls(t, "CreateTask", 1)
}

func ptr[T any](v T) *T {
	return &v
}
