package tableau

// FactId names a signed formula as introduced into the proof tree. FactIds
// are assigned from a single monotonic counter for the lifetime of an
// Engine and are never reused, even across branches.
type FactId int

// NodeId indexes into Engine.Nodes.
type NodeId int

// SignedFormula pairs a formula with the truth value assumed for it on a
// branch: expect=true asserts "assume this holds", expect=false asserts
// "assume this fails".
type SignedFormula struct {
	F      Formula
	Expect bool
}

// NodeFact is one signed formula as it appears inside a Node, carrying the
// FactId it was allocated under.
type NodeFact struct {
	ID     FactId
	F      Formula
	Expect bool
}

// Node is one point in the proof tree: the signed formulas established on
// entry to it, and whether the branch through it has been refuted.
type Node struct {
	Facts  []NodeFact
	Closed bool
}

// Edge is a directed arc of the proof tree, labelled with the FactId whose
// processing produced the child node.
type Edge struct {
	From         NodeId
	IntroducedBy FactId
	To           NodeId
}

// repeater is a deferred quantifier instantiator: it fires once per known
// constant and remains available to fire again as new constants appear.
type repeater struct {
	FactID                FactId
	Name                  string
	Body                  Formula
	Expect                bool
	AlreadyInstantiatedOn map[string]struct{}
	creationSeq           int
}

func (r *repeater) clone() *repeater {
	cp := &repeater{
		FactID:                r.FactID,
		Name:                  r.Name,
		Body:                  r.Body,
		Expect:                r.Expect,
		creationSeq:           r.creationSeq,
		AlreadyInstantiatedOn: make(map[string]struct{}, len(r.AlreadyInstantiatedOn)),
	}
	for c := range r.AlreadyInstantiatedOn {
		cp.AlreadyInstantiatedOn[c] = struct{}{}
	}
	return cp
}

// queueEntry is pending standard work: a signed formula queued for rule
// dispatch. Seq records when it became available, for deterministic
// tie-breaking in pop's priority scan.
type queueEntry struct {
	ID     FactId
	F      Formula
	Expect bool
	Seq    int
}

// knowledge is the cloneable proof-search state for one branch: every
// signed formula established so far (for contradiction detection), the
// pending work queue, the constants available for quantifier instantiation,
// and the quantifier repeaters still live on this branch.
//
// A straightforward deep clone is used for snapshotting (see engine.go's
// push/restore). A persistent map with structural sharing would also work,
// but branch depth is bounded by formula structure and the fact cap keeps
// clones small.
type knowledge struct {
	facts        map[string]bool // formula key -> expect
	queue        []queueEntry
	constantsSet map[string]bool
	constantsOrd []string // insertion order, for deterministic repeater scans
	constantSeq  map[string]int
	repeaters    []*repeater
}

func newKnowledge() *knowledge {
	return &knowledge{
		facts:        make(map[string]bool),
		constantsSet: make(map[string]bool),
		constantSeq:  make(map[string]int),
	}
}

func (k *knowledge) clone() *knowledge {
	out := &knowledge{
		facts:        make(map[string]bool, len(k.facts)),
		queue:        make([]queueEntry, len(k.queue)),
		constantsSet: make(map[string]bool, len(k.constantsSet)),
		constantsOrd: append([]string(nil), k.constantsOrd...),
		constantSeq:  make(map[string]int, len(k.constantSeq)),
		repeaters:    make([]*repeater, len(k.repeaters)),
	}
	for key, v := range k.facts {
		out.facts[key] = v
	}
	copy(out.queue, k.queue)
	for c, v := range k.constantsSet {
		out.constantsSet[c] = v
	}
	for c, v := range k.constantSeq {
		out.constantSeq[c] = v
	}
	for i, r := range k.repeaters {
		out.repeaters[i] = r.clone()
	}
	return out
}

// peek reports the currently established sign of f, if any.
func (k *knowledge) peek(f Formula) (expect bool, ok bool) {
	expect, ok = k.facts[f.key()]
	return expect, ok
}

// set records f's sign unconditionally. Callers must have already checked
// peek to decide whether this is a fresh fact, a duplicate, or a
// contradiction.
func (k *knowledge) set(f Formula, expect bool) {
	k.facts[f.key()] = expect
}

// addConstant registers name for quantifier instantiation on this branch,
// stamping it with seq for deterministic repeater-priority ordering. A
// no-op if name is already present.
func (k *knowledge) addConstant(name string, seq int) {
	if k.constantsSet[name] {
		return
	}
	k.constantsSet[name] = true
	k.constantsOrd = append(k.constantsOrd, name)
	k.constantSeq[name] = seq
}

// insertItems extends the current branch with items, producing the NodeFact
// list for the node that will hold them. allocFact and seq are supplied by
// the caller (Engine) so this stays a pure function of its knowledge
// argument. Every item gets a fresh FactId and a place in the node; the
// knowledge update runs separately and stops at the first contradiction,
// so a signed formula never creates facts[φ]=true and facts[φ]=false
// simultaneously — the branch closes instead, leaving any remaining items
// visible in the node but unqueued. Items whose sign is already known are
// dropped from the queue, not worked twice.
func insertItems(k *knowledge, items []SignedFormula, allocFact func() FactId, seq func() int) (facts []NodeFact, closed bool) {
	for _, it := range items {
		facts = append(facts, NodeFact{ID: allocFact(), F: it.F, Expect: it.Expect})
	}
	for i, it := range items {
		existing, ok := k.peek(it.F)
		if ok && existing == it.Expect {
			continue
		}
		if ok {
			return facts, true
		}
		k.set(it.F, it.Expect)
		k.queue = append(k.queue, queueEntry{ID: facts[i].ID, F: it.F, Expect: it.Expect, Seq: seq()})
	}
	return facts, false
}
