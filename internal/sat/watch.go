package sat

// watchIndex is the watched-literal index from the data model: for every
// literal, the list of clauses that currently watch it. The companion half
// of the index — each clause's own pair of watched literals — lives on the
// clause itself (clause.literals[0:2]), not here.
type watchIndex struct {
	lists [][]*clause // indexed by Literal value
}

func newWatchIndex(numVars int) *watchIndex {
	return &watchIndex{lists: make([][]*clause, numVars*2)}
}

func (w *watchIndex) grow() {
	w.lists = append(w.lists, nil, nil)
}

// listOf returns the current list of clauses watching l. The caller may
// mutate the returned slice's backing array via setListOf but must not
// retain it across a call that could trigger a re-append (see
// Solver.propagateOne for the standard reuse pattern).
func (w *watchIndex) listOf(l Literal) []*clause {
	return w.lists[l]
}

func (w *watchIndex) setListOf(l Literal, cs []*clause) {
	w.lists[l] = cs
}

// add registers c as watching l.
func (w *watchIndex) add(l Literal, c *clause) {
	w.lists[l] = append(w.lists[l], c)
}

// install registers a freshly built clause's two watched literals. Called
// once per clause, after preprocessing, before search begins.
func (w *watchIndex) install(c *clause) {
	l0, l1 := c.watched()
	w.add(l0, c)
	w.add(l1, c)
}
