package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tau/internal/app/client"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		pull    bool
		push    bool
		want    client.SyncOptions
		wantErr bool
	}{
		{name: "full", want: client.FullSync},
		{name: "pull only", pull: true, want: client.SyncOptions{Pull: true}},
		{name: "push only", push: true, want: client.SyncOptions{Push: true}},
		{name: "both", pull: true, push: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := options(tt.pull, tt.push)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
