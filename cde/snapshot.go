package cde

import "fmt"

type opKind int

const (
	opRegister opKind = iota
	opActivate
)

type logEntry struct {
	kind       opKind
	key        HazardKey
	prevActive bool
}

// snapshotLog is the append-only change log behind Snapshot/Restore
// (spec.md §4.H): entries accumulate as mutations happen, and Restore
// only ever walks back to a previously recorded mark, giving O(changes
// since the snapshot) rollback instead of a full index rebuild.
//
// Restore only undoes Register and SetActive: a Deregister is treated
// as terminal and is never rolled back, since undoing it would have to
// resurrect the hazard under its original HazardKey, and the registry
// deliberately bumps a freed slot's generation specifically so no key
// can ever be resurrected to alias a different occupant. Callers that
// want a placement attempt to be fully revertible should prefer
// SetActive(key, false) over Deregister until they are certain.
type snapshotLog struct {
	entries []logEntry
	marks   []int
}

func (s *snapshotLog) push(e logEntry) {
	s.entries = append(s.entries, e)
}

// Snapshot records the current point in the change log and returns a
// token identifying it. Snapshots nest LIFO: restoring to an outer
// token also discards any inner snapshots taken after it.
func (e *Engine) Snapshot() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snap.marks = append(e.snap.marks, len(e.snap.entries))
	return len(e.snap.marks) - 1
}

// Restore undoes every mutation recorded since the snapshot identified
// by token, then discards token and any snapshot taken after it.
func (e *Engine) Restore(token int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if token < 0 || token >= len(e.snap.marks) {
		return fmt.Errorf("cde: Restore: invalid snapshot token %d", token)
	}
	mark := e.snap.marks[token]
	undone := len(e.snap.entries) - mark
	for i := len(e.snap.entries) - 1; i >= mark; i-- {
		entry := e.snap.entries[i]
		switch entry.kind {
		case opRegister:
			_ = e.registry.Deregister(entry.key)
		case opActivate:
			_ = e.registry.SetActive(entry.key, entry.prevActive)
		}
	}
	e.snap.entries = e.snap.entries[:mark]
	e.snap.marks = e.snap.marks[:token]
	e.log.Debug("snapshot restored", "token", token, "undone", undone)
	return nil
}
