package tableau

import (
	"fmt"

	"go.uber.org/zap"
)

// Limits configures the three termination counters described in the
// design: processed steps, fresh constants introduced, and facts
// allocated. They are intentionally not hard constants — see WithStepLimit
// and friends — but the defaults (300/100/100) match the reference
// configuration.
type Limits struct {
	MaxSteps     int
	MaxConstants int
	MaxFacts     int
}

// DefaultLimits returns the reference engine caps.
func DefaultLimits() Limits {
	return Limits{MaxSteps: 300, MaxConstants: 100, MaxFacts: 100}
}

// Option configures an Engine at construction time, following the
// functional-option idiom.
type Option func(*Engine)

// WithStepLimit overrides the processed-step budget.
func WithStepLimit(n int) Option { return func(e *Engine) { e.limits.MaxSteps = n } }

// WithConstantLimit overrides the fresh-constant budget.
func WithConstantLimit(n int) Option { return func(e *Engine) { e.limits.MaxConstants = n } }

// WithFactLimit overrides the fact-allocation budget.
func WithFactLimit(n int) Option { return func(e *Engine) { e.limits.MaxFacts = n } }

// WithLogger attaches a structured logger; nil is replaced with a no-op
// logger, so the engine remains usable as a pure library without a caller
// opting into logging.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(e *Engine) {
		if l == nil {
			l = zap.NewNop().Sugar()
		}
		e.log = l
	}
}

// Engine constructs and runs a tableau proof for a set of signed formulas.
// Once New returns, an Engine is read-only: Nodes, Edges, DOT(), Stats(),
// and Closed() are the only public surface, there is no further mutation API.
type Engine struct {
	Nodes []Node
	Edges []Edge

	limits Limits
	log    *zap.SugaredLogger

	knowledge *knowledge
	stack     []*knowledge

	nextFactID   FactId
	nextConstant int
	seqCounter   int

	steps         int
	constantCount int
	everSeen      map[string]bool
}

// New builds the initial node from signed, then runs the tableau to
// completion (closure on every branch, or budget exhaustion leaving some
// branches open). The returned Engine is fully formed; there is no separate
// "run" step.
func New(signed []SignedFormula, opts ...Option) *Engine {
	e := &Engine{
		limits:   DefaultLimits(),
		log:      zap.NewNop().Sugar(),
		everSeen: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.knowledge = newKnowledge()
	for _, sf := range signed {
		for _, v := range FreeVariables(sf.F) {
			e.registerConstant(v)
		}
	}

	facts, closed := insertItems(e.knowledge, signed, e.allocFact, e.nextSeq)
	e.Nodes = append(e.Nodes, Node{Facts: facts, Closed: closed})
	e.log.Debugw("root node built", "facts", len(facts), "closed", closed)

	if !closed {
		e.processBranch(0)
	}
	return e
}

func (e *Engine) allocFact() FactId {
	id := e.nextFactID
	e.nextFactID++
	return id
}

func (e *Engine) nextSeq() int {
	e.seqCounter++
	return e.seqCounter
}

func (e *Engine) registerConstant(name string) {
	e.knowledge.addConstant(name, e.nextSeq())
	if !e.everSeen[name] {
		e.everSeen[name] = true
		e.constantCount++
	}
}

func (e *Engine) freshConstant() string {
	name := fmt.Sprintf("C%d", e.nextConstant)
	e.nextConstant++
	e.registerConstant(name)
	return name
}

func (e *Engine) addRepeater(id FactId, name string, body Formula, expect bool) {
	e.knowledge.repeaters = append(e.knowledge.repeaters, &repeater{
		FactID:                id,
		Name:                  name,
		Body:                  body,
		Expect:                expect,
		AlreadyInstantiatedOn: make(map[string]struct{}),
		creationSeq:           e.nextSeq(),
	})
}

func (e *Engine) budgetExceeded() bool {
	return e.steps >= e.limits.MaxSteps ||
		e.constantCount >= e.limits.MaxConstants ||
		int(e.nextFactID) >= e.limits.MaxFacts
}

// push saves the current knowledge onto the snapshot stack. Must be paired
// with a later restore; between the two the engine is free to mutate
// knowledge arbitrarily.
func (e *Engine) push() {
	e.stack = append(e.stack, e.knowledge.clone())
}

// restore pops the snapshot stack back into knowledge. Restoring an empty
// stack is a programming bug, never expected in correct use, so it panics
// rather than silently continuing on corrupt state.
func (e *Engine) restore() {
	if len(e.stack) == 0 {
		panic("tableau: knowledge snapshot underflow")
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.knowledge = top
}

// straight extends the branch rooted at fromNode with items, allocating a
// new node and an edge from fromNode labelled introducedBy. An empty items
// list does nothing to the tree and returns fromNode unchanged.
func (e *Engine) straight(fromNode NodeId, introducedBy FactId, items []SignedFormula) (NodeId, bool) {
	if len(items) == 0 {
		return fromNode, false
	}
	facts, closed := insertItems(e.knowledge, items, e.allocFact, e.nextSeq)
	to := NodeId(len(e.Nodes))
	e.Nodes = append(e.Nodes, Node{Facts: facts, Closed: closed})
	e.Edges = append(e.Edges, Edge{From: fromNode, IntroducedBy: introducedBy, To: to})
	if closed {
		e.log.Debugw("branch closed", "node", to)
	}
	return to, closed
}

// branch forks the current branch: it snapshots knowledge, extends with
// left, processes that sibling to completion (or closure), restores the
// snapshot, then does the same for right. Both siblings share fromNode and
// introducedBy.
func (e *Engine) branch(fromNode NodeId, introducedBy FactId, left, right []SignedFormula) {
	e.push()
	ln, lc := e.straight(fromNode, introducedBy, left)
	if !lc {
		e.processBranch(ln)
	}
	e.restore()

	e.push()
	rn, rc := e.straight(fromNode, introducedBy, right)
	if !rc {
		e.processBranch(rn)
	}
	e.restore()
}

// processBranch repeatedly pops the highest-priority pending signed formula
// and applies its tableau rule, walking cur forward as straight extensions
// allocate new nodes, until the branch closes, the work queue (including
// repeater instantiations) is exhausted, or the termination budget is
// spent.
func (e *Engine) processBranch(node NodeId) {
	cur := node
	for {
		if e.Nodes[cur].Closed {
			return
		}
		if e.budgetExceeded() {
			e.log.Debugw("budget exceeded", "steps", e.steps, "constants", e.constantCount, "facts", int(e.nextFactID))
			return
		}
		cand, ok := e.pop()
		if !ok {
			return
		}
		e.steps++

		if cand.fromRepeater {
			nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: cand.f, Expect: cand.expect}})
			cur = nn
			if closed {
				return
			}
			continue
		}

		switch f := cand.f.(type) {
		case Var, Predicate:
			// Atomic: settles a literal, no expansion.
		case Not:
			nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: f.Child, Expect: !cand.expect}})
			cur = nn
			if closed {
				return
			}
		case And:
			if cand.expect {
				nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: f.Left, Expect: true}, {F: f.Right, Expect: true}})
				cur = nn
				if closed {
					return
				}
			} else {
				e.branch(cur, cand.id, []SignedFormula{{F: f.Left, Expect: false}}, []SignedFormula{{F: f.Right, Expect: false}})
				return
			}
		case Or:
			if cand.expect {
				e.branch(cur, cand.id, []SignedFormula{{F: f.Left, Expect: true}}, []SignedFormula{{F: f.Right, Expect: true}})
				return
			}
			nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: f.Left, Expect: false}, {F: f.Right, Expect: false}})
			cur = nn
			if closed {
				return
			}
		case Implies:
			if cand.expect {
				e.branch(cur, cand.id, []SignedFormula{{F: f.Left, Expect: false}}, []SignedFormula{{F: f.Right, Expect: true}})
				return
			}
			nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: f.Left, Expect: true}, {F: f.Right, Expect: false}})
			cur = nn
			if closed {
				return
			}
		case Iff:
			if cand.expect {
				e.branch(cur, cand.id,
					[]SignedFormula{{F: f.Left, Expect: false}, {F: f.Right, Expect: false}},
					[]SignedFormula{{F: f.Left, Expect: true}, {F: f.Right, Expect: true}})
			} else {
				e.branch(cur, cand.id,
					[]SignedFormula{{F: f.Left, Expect: false}, {F: f.Right, Expect: true}},
					[]SignedFormula{{F: f.Left, Expect: true}, {F: f.Right, Expect: false}})
			}
			return
		case ForAll:
			if cand.expect {
				e.addRepeater(cand.id, f.Name, f.Body, true)
			} else {
				c := e.freshConstant()
				nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: Substitute(f.Body, f.Name, c), Expect: false}})
				cur = nn
				if closed {
					return
				}
			}
		case Exists:
			if cand.expect {
				c := e.freshConstant()
				nn, closed := e.straight(cur, cand.id, []SignedFormula{{F: Substitute(f.Body, f.Name, c), Expect: true}})
				cur = nn
				if closed {
					return
				}
			} else {
				e.addRepeater(cand.id, f.Name, f.Body, false)
			}
		}
	}
}

// candidate is one item pop() considered: either a standard queue entry or
// a still-available (repeater, constant) instantiation.
type candidate struct {
	fromRepeater bool
	queueIdx     int
	rep          *repeater
	constant     string
	id           FactId
	f            Formula
	expect       bool
	score        int
	seq          int
}

// pop projects the standard queue and every not-yet-fired (repeater,
// constant) pair into one candidate list, scores each per the priority
// table, and returns the minimum-scoring one (ties broken by insertion
// order). Selecting a repeater candidate marks that constant as
// instantiated on that repeater; selecting a queue candidate removes it
// from the queue. Returns ok=false when nothing is left to do.
func (e *Engine) pop() (candidate, bool) {
	var best *candidate

	consider := func(c candidate) {
		if best == nil || c.score < best.score || (c.score == best.score && c.seq < best.seq) {
			cc := c
			best = &cc
		}
	}

	for i, q := range e.knowledge.queue {
		consider(candidate{
			queueIdx: i,
			id:       q.ID,
			f:        q.F,
			expect:   q.Expect,
			seq:      q.Seq,
			score:    scoreCandidate(q.F, q.Expect, e.knowledge),
		})
	}

	for _, r := range e.knowledge.repeaters {
		for _, name := range e.knowledge.constantsOrd {
			if _, done := r.AlreadyInstantiatedOn[name]; done {
				continue
			}
			sub := Substitute(r.Body, r.Name, name)
			seq := r.creationSeq
			if cs := e.knowledge.constantSeq[name]; cs > seq {
				seq = cs
			}
			// A repeater firing is a straight extension, not a rule
			// expansion, so only the contradiction rung applies to it.
			score := 100
			if wouldContradict(sub, r.Expect, e.knowledge) {
				score = 0
			}
			consider(candidate{
				fromRepeater: true,
				rep:          r,
				constant:     name,
				id:           r.FactID,
				f:            sub,
				expect:       r.Expect,
				seq:          seq,
				score:        score,
			})
		}
	}

	if best == nil {
		return candidate{}, false
	}
	if best.fromRepeater {
		best.rep.AlreadyInstantiatedOn[best.constant] = struct{}{}
	} else {
		e.knowledge.queue = append(e.knowledge.queue[:best.queueIdx], e.knowledge.queue[best.queueIdx+1:]...)
	}
	return *best, true
}

// scoreCandidate orders the work queue for rapid closure: 0 for anything
// that would immediately contradict a known fact, 1 for a settling Var
// literal, 2 for non-branching expansions, 3 for branching expansions of
// And/Or/Implies, 100 for everything else (Iff, Not, predicates, and
// quantifier work, including repeater firings).
func scoreCandidate(f Formula, expect bool, k *knowledge) int {
	if wouldContradict(f, expect, k) {
		return 0
	}
	switch f.(type) {
	case Var:
		return 1
	case And:
		if expect {
			return 2
		}
		return 3
	case Or:
		if expect {
			return 3
		}
		return 2
	case Implies:
		if expect {
			return 3
		}
		return 2
	default:
		return 100
	}
}

func wouldContradict(f Formula, expect bool, k *knowledge) bool {
	if existing, ok := k.peek(f); ok && existing != expect {
		return true
	}
	switch n := f.(type) {
	case And:
		if expect {
			if v, ok := k.peek(n.Left); ok && v != true {
				return true
			}
			if v, ok := k.peek(n.Right); ok && v != true {
				return true
			}
		}
	case Or:
		if !expect {
			if v, ok := k.peek(n.Left); ok && v != false {
				return true
			}
			if v, ok := k.peek(n.Right); ok && v != false {
				return true
			}
		}
	case Implies:
		if expect {
			// Branching to (left,F) | (right,T): either side dies on the
			// spot when left is already known true or right known false.
			if v, ok := k.peek(n.Left); ok && v {
				return true
			}
			if v, ok := k.peek(n.Right); ok && !v {
				return true
			}
		} else {
			if v, ok := k.peek(n.Left); ok && v != true {
				return true
			}
			if v, ok := k.peek(n.Right); ok && v != false {
				return true
			}
		}
	case Not:
		if v, ok := k.peek(n.Child); ok && v != !expect {
			return true
		}
	}
	return false
}

// Stats summarizes a finished run: the three termination counters plus the
// shape of the resulting proof tree.
type Stats struct {
	Steps        int
	Constants    int
	Facts        int
	Nodes        int
	Edges        int
	ClosedLeaves int
	OpenLeaves   int
	BudgetSpent  bool
}

// Stats reports the engine's termination counters and proof-tree shape.
func (e *Engine) Stats() Stats {
	s := Stats{
		Steps:       e.steps,
		Constants:   e.constantCount,
		Facts:       int(e.nextFactID),
		Nodes:       len(e.Nodes),
		Edges:       len(e.Edges),
		BudgetSpent: e.budgetExceeded(),
	}
	hasChild := make(map[NodeId]bool, len(e.Edges))
	for _, ed := range e.Edges {
		hasChild[ed.From] = true
	}
	for id, n := range e.Nodes {
		if hasChild[NodeId(id)] {
			continue
		}
		if n.Closed {
			s.ClosedLeaves++
		} else {
			s.OpenLeaves++
		}
	}
	return s
}

// Closed reports whether every branch of the proof tree closed, i.e. the
// conjunction of the input signed formulas is unsatisfiable and the
// implicit entailment holds.
func (e *Engine) Closed() bool {
	return e.Stats().OpenLeaves == 0
}
