package msm

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/markov/scc"
)

// CommunicationClass is a maximal set of mutually reachable states (one
// strongly connected component of the transition graph) plus its closedness:
// a class is closed when no edge leaves it.
type CommunicationClass struct {
	// States holds the member labels in matrix row order.
	States []string

	// Closed reports that no transition leads out of the class.
	Closed bool

	indices []int // member row indices, ascending; set by CommunicationClasses
}

// Size returns the number of member states.
func (c CommunicationClass) Size() int { return len(c.States) }

// CommunicationClasses returns the communication classes of the state space,
// sorted by descending size; ties keep the discovery order of the second
// Kosaraju pass (stable sort). The classes partition the state space.
func (m *Model) CommunicationClasses() []CommunicationClass {
	m.classesOnce.Do(func() {
		components, err := scc.StronglyConnected(m.t)
		if err != nil {
			// The model's own matrix always satisfies the adjacency contract.
			panic(fmt.Sprintf("msm: %v", err))
		}

		classes := make([]CommunicationClass, 0, len(components))
		for _, component := range components {
			sort.Ints(component)
			states := make([]string, len(component))
			for i, v := range component {
				states[i] = m.t.Label(v)
			}
			classes = append(classes, CommunicationClass{
				States:  states,
				Closed:  scc.IsClosed(component, m.t),
				indices: component,
			})
		}
		sort.SliceStable(classes, func(i, j int) bool {
			return len(classes[i].States) > len(classes[j].States)
		})
		m.classesVal = classes
	})

	// Defensive copies: the cache must never alias caller-visible slices.
	out := make([]CommunicationClass, len(m.classesVal))
	for i, c := range m.classesVal {
		out[i] = CommunicationClass{
			States:  append([]string(nil), c.States...),
			Closed:  c.Closed,
			indices: c.indices,
		}
	}

	return out
}

// IsIrreducible reports whether every state is reachable from every other
// state, i.e. there is exactly one communication class.
func (m *Model) IsIrreducible() bool {
	return len(m.CommunicationClasses()) == 1
}

// Restriction returns a new model scoped to a closed communication class:
// its transition matrix is the principal submatrix over the class's states
// (row and column order preserved), carrying the class labels and the
// receiver's lag time and clusterer. Returns ErrClassNotClosed for an open
// class and ErrUnknownState when a caller-constructed class names a label the
// model does not have.
func (m *Model) Restriction(c CommunicationClass) (*Model, error) {
	if !c.Closed {
		return nil, ErrClassNotClosed
	}

	indices := c.indices
	if indices == nil {
		// Class built by hand: resolve its labels against this model.
		indices = make([]int, len(c.States))
		for i, label := range c.States {
			v, ok := m.t.Index(label)
			if !ok {
				return nil, fmt.Errorf("Restriction: %q: %w", label, ErrUnknownState)
			}
			indices[i] = v
		}
	}

	sub, err := m.t.Submatrix(indices)
	if err != nil {
		return nil, fmt.Errorf("Restriction: %w", err)
	}

	return New(sub, WithLagtime(m.lagtime), WithClusterer(m.clusterer))
}
