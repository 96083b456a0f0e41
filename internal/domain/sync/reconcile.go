package sync

// Local is a cached record as seen by reconciliation.
type Local[F any] struct {
	LocalID int64
	State   State
	Fields  F
}

// Remote is a server record as seen by reconciliation.
type Remote[F any] struct {
	RemoteID int64
	Fields   F
}

// Update overwrites a local row with server data and marks it synced.
type Update[F any] struct {
	LocalID  int64
	RemoteID int64
	Fields   F
}

// Insert adds a server record that has no local counterpart.
type Insert[F any] struct {
	RemoteID int64
	Fields   F
}

// Plan is the staged outcome of one reconciliation, applied in a single
// transaction by the store.
type Plan[F any] struct {
	Updates []Update[F]
	Inserts []Insert[F]
}

func (p Plan[F]) Stats(fetched int) PullStats {
	return PullStats{
		Fetched:  fetched,
		Updated:  len(p.Updates),
		Inserted: len(p.Inserts),
	}
}

// Matcher pairs a server record with a local row that has no remote id yet.
type Matcher[F any] func(local Local[F], remote Remote[F]) bool

// Reconcile matches remotes against locals by remote id. When fallback is
// set, an unmatched remote may attach to an unclaimed local row without a
// remote id. Everything else becomes an insert. Locals absent on the server
// are left alone.
func Reconcile[F any](locals []Local[F], remotes []Remote[F], fallback Matcher[F]) Plan[F] {
	byRemote := make(map[int64]int, len(locals))
	for i, l := range locals {
		if id, ok := l.State.RemoteID(); ok {
			byRemote[id] = i
		}
	}

	claimed := make(map[int64]bool)
	var plan Plan[F]

	for _, r := range remotes {
		if i, ok := byRemote[r.RemoteID]; ok {
			claimed[locals[i].LocalID] = true
			plan.Updates = append(plan.Updates, Update[F]{
				LocalID:  locals[i].LocalID,
				RemoteID: r.RemoteID,
				Fields:   r.Fields,
			})
			continue
		}

		if fallback != nil {
			if l, ok := firstUnclaimed(locals, claimed, r, fallback); ok {
				claimed[l.LocalID] = true
				plan.Updates = append(plan.Updates, Update[F]{
					LocalID:  l.LocalID,
					RemoteID: r.RemoteID,
					Fields:   r.Fields,
				})
				continue
			}
		}

		plan.Inserts = append(plan.Inserts, Insert[F]{RemoteID: r.RemoteID, Fields: r.Fields})
	}

	return plan
}

func firstUnclaimed[F any](locals []Local[F], claimed map[int64]bool, r Remote[F], match Matcher[F]) (Local[F], bool) {
	for _, l := range locals {
		if claimed[l.LocalID] {
			continue
		}
		if _, has := l.State.RemoteID(); has {
			continue
		}
		if match(l, r) {
			return l, true
		}
	}
	return Local[F]{}, false
}
