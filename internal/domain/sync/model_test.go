package sync

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestState_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		wantKind   Kind
		wantRemote int64
		hasRemote  bool
		edited     Kind
	}{
		{
			name:     "unsynced",
			state:    Unsynced(),
			wantKind: KindUnsynced,
			edited:   KindUnsynced,
		},
		{
			name:       "pending",
			state:      Pending(4),
			wantKind:   KindPending,
			wantRemote: 4,
			hasRemote:  true,
			edited:     KindPending,
		},
		{
			name:       "synced",
			state:      Synced(9),
			wantKind:   KindSynced,
			wantRemote: 9,
			hasRemote:  true,
			edited:     KindPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, tt.state.Kind())

			id, ok := tt.state.RemoteID()
			assert.Equal(t, tt.hasRemote, ok)
			assert.Equal(t, tt.wantRemote, id)

			edited := tt.state.Edited()
			assert.Equal(t, tt.edited, edited.Kind())
			editedID, _ := edited.RemoteID()
			assert.Equal(t, tt.wantRemote, editedID, "editing never drops the remote id")
		})
	}
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name     string
		remoteID *int64
		synced   bool
		want     State
	}{
		{name: "no remote id", want: Unsynced()},
		{name: "synced without remote id is unsynced", synced: true, want: Unsynced()},
		{name: "remote id not synced", remoteID: int64Ptr(3), want: Pending(3)},
		{name: "remote id synced", remoteID: int64Ptr(3), synced: true, want: Synced(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Restore(tt.remoteID, tt.synced))
		})
	}
}

func TestState_Columns(t *testing.T) {
	id, synced := Unsynced().Columns()
	assert.Nil(t, id)
	assert.False(t, synced)

	id, synced = Synced(12).Columns()
	require.NotNil(t, id)
	assert.Equal(t, int64(12), *id)
	assert.True(t, synced)

	id, synced = Pending(12).Columns()
	require.NotNil(t, id)
	assert.False(t, synced)

	assert.Equal(t, "synced#12", Synced(12).String())
	assert.Equal(t, "unsynced", Unsynced().String())
}

func TestResult_Success(t *testing.T) {
	r := &Result{}
	r.AddError(nil)
	assert.True(t, r.Success())

	r.AddError(errors.New("pull tasks: boom"))
	assert.False(t, r.Success())
	assert.Equal(t, []string{"pull tasks: boom"}, r.Errors)
}

func TestStatusCode(t *testing.T) {
	err := fmt.Errorf("create discipline: %w", &StatusError{Code: 404, Message: "not here"})

	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 404, code)
	assert.Contains(t, err.Error(), "not here")

	_, ok = StatusCode(errors.New("plain"))
	assert.False(t, ok)

	assert.Equal(t, "remote status 500: Internal Server Error", (&StatusError{Code: 500}).Error())
}

func TestState_MarshalJSON(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Unsynced(), `{"status":"unsynced"}`},
		{Pending(3), `{"status":"pending","remote_id":3}`},
		{Synced(7), `{"status":"synced","remote_id":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			got, err := json.Marshal(tt.state)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
