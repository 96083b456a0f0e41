package render

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tau/internal/domain/sync"
)

func init() {
	color.NoColor = true
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Table(&buf, []string{"ID", "NAME"}, [][]string{
		{"1", "Calculus"},
		{"12", "Art"},
	}))

	assert.Equal(t, "ID  NAME\n1   Calculus\n12  Art\n", buf.String())
}

func TestState(t *testing.T) {
	assert.Equal(t, "unsynced", State(sync.Unsynced()))
	assert.Equal(t, "pending [4]", State(sync.Pending(4)))
	assert.Equal(t, "synced [9]", State(sync.Synced(9)))
}

func TestSwatch(t *testing.T) {
	assert.Equal(t, "■ #FF0000", Swatch("#FF0000"))
	assert.Equal(t, "", Swatch(""))
	assert.Equal(t, "blue", Swatch("blue"))
}

func TestMutation(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
		wantOut string
	}{
		{
			name:    "synced",
			wantOut: "✓ task 3 created\n",
		},
		{
			name:    "push failed",
			err:     fmt.Errorf("%w: create task: %w", sync.ErrPushFailed, sync.ErrTransport),
			wantOut: "✓ task 3 created\n! saved locally, not synced: remote push failed: create task: remote unreachable\n",
		},
		{
			name:    "local failure",
			err:     errors.New("disk full"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Mutation(&buf, tt.err, "task %d created", 3)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, buf.String())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}

func TestSyncResult(t *testing.T) {
	var buf bytes.Buffer
	res := &sync.Result{Errors: []string{"pull tasks: remote unreachable"}}
	res.Tasks.Push.Skipped = 2

	require.NoError(t, SyncResult(&buf, res))

	out := buf.String()
	assert.Contains(t, out, "sync finished with 1 error(s)")
	assert.Contains(t, out, "pull tasks: remote unreachable")
}
