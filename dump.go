package srclog

/*
dump.go

Point-in-time export of the registry for introspection. The returned
Snapshot is a deep copy with no back-reference to the live registry:
registrations and level changes made afterwards do not show up in it.
*/

// SrcDump copies the global level and every currently registered
// (source, level) pair into a freshly owned Snapshot. Sources are listed
// in registration order.
//
// Returns nil if the context is not initialized.
func (l *Logger) SrcDump() *Snapshot {
	l.guard.lock()
	defer l.guard.unlock()
	if !l.initialized {
		return nil
	}
	snap := &Snapshot{
		GlobalLevel: l.level,
		Sources:     make([]SrcDescr, 0, len(l.order)),
	}
	for _, source := range l.order {
		snap.Sources = append(snap.Sources, SrcDescr{
			Source:   source,
			MinLevel: l.sources[source],
		})
	}
	return snap
}
