package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type named struct {
	Name string
}

func byName(l Local[named], r Remote[named]) bool {
	return l.Fields.Name == r.Fields.Name
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		locals   []Local[named]
		remotes  []Remote[named]
		fallback Matcher[named]
		want     Plan[named]
	}{
		{
			name: "matches by remote id",
			locals: []Local[named]{
				{LocalID: 1, State: Pending(7), Fields: named{"Old"}},
			},
			remotes: []Remote[named]{{RemoteID: 7, Fields: named{"New"}}},
			want: Plan[named]{
				Updates: []Update[named]{{LocalID: 1, RemoteID: 7, Fields: named{"New"}}},
			},
		},
		{
			name: "unknown remote is inserted without fallback",
			locals: []Local[named]{
				{LocalID: 1, State: Unsynced(), Fields: named{"Calculus"}},
			},
			remotes: []Remote[named]{{RemoteID: 7, Fields: named{"Calculus"}}},
			want: Plan[named]{
				Inserts: []Insert[named]{{RemoteID: 7, Fields: named{"Calculus"}}},
			},
		},
		{
			name: "fallback attaches to unsynced local with same name",
			locals: []Local[named]{
				{LocalID: 1, State: Unsynced(), Fields: named{"Calculus"}},
			},
			remotes:  []Remote[named]{{RemoteID: 7, Fields: named{"Calculus"}}},
			fallback: byName,
			want: Plan[named]{
				Updates: []Update[named]{{LocalID: 1, RemoteID: 7, Fields: named{"Calculus"}}},
			},
		},
		{
			name: "fallback ignores locals that already have a remote id",
			locals: []Local[named]{
				{LocalID: 1, State: Synced(3), Fields: named{"Calculus"}},
			},
			remotes:  []Remote[named]{{RemoteID: 7, Fields: named{"Calculus"}}},
			fallback: byName,
			want: Plan[named]{
				Inserts: []Insert[named]{{RemoteID: 7, Fields: named{"Calculus"}}},
			},
		},
		{
			name: "a local row is claimed once",
			locals: []Local[named]{
				{LocalID: 1, State: Unsynced(), Fields: named{"Physics"}},
			},
			remotes: []Remote[named]{
				{RemoteID: 7, Fields: named{"Physics"}},
				{RemoteID: 8, Fields: named{"Physics"}},
			},
			fallback: byName,
			want: Plan[named]{
				Updates: []Update[named]{{LocalID: 1, RemoteID: 7, Fields: named{"Physics"}}},
				Inserts: []Insert[named]{{RemoteID: 8, Fields: named{"Physics"}}},
			},
		},
		{
			name: "locals missing remotely are untouched",
			locals: []Local[named]{
				{LocalID: 1, State: Synced(5), Fields: named{"Gone"}},
				{LocalID: 2, State: Unsynced(), Fields: named{"Draft"}},
			},
			remotes: nil,
			want:    Plan[named]{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.locals, tt.remotes, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlan_Stats(t *testing.T) {
	plan := Plan[named]{
		Updates: []Update[named]{{LocalID: 1, RemoteID: 2}},
		Inserts: []Insert[named]{{RemoteID: 3}, {RemoteID: 4}},
	}

	assert.Equal(t, PullStats{Fetched: 3, Updated: 1, Inserted: 2}, plan.Stats(3))
}
