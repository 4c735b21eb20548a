package edn

// Release destroys the Arena backing v, reclaiming every chunk allocated
// during the parse that produced v (spec.md §3.4: "one parse = one
// arena"). After Release, v and everything reachable from it (elements,
// decoded strings, metadata) must not be used again.
//
// Release is optional: an unreleased Arena is ordinary garbage once the
// caller drops its last reference to v, so Release only matters when a
// caller wants to reclaim memory deterministically rather than waiting on
// the garbage collector.
func Release(v *Value) {
	if v == nil || v.ar == nil {
		return
	}
	v.ar.Destroy()
}
