// Package history keeps the log of successful tree operations so the last
// one can be undone. Undo rebuilds the tree from scratch by replaying every
// remaining action; the engine itself has no notion of history.
package history

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	bplus "BPlusViz/bplustree"
	"BPlusViz/conf"
)

type Kind int

const (
	Insert Kind = iota
	Delete
	Order
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Order:
		return "order"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is one recorded operation. Key is set for Insert and Delete,
// Order for Order.
type Action struct {
	Kind  Kind
	Key   int
	Order int
}

func (a Action) String() string {
	if a.Kind == Order {
		return fmt.Sprintf("order %d", a.Order)
	}
	return fmt.Sprintf("%s %d", a.Kind, a.Key)
}

type History struct {
	baseOrder int // order the replay starts from
	actions   []Action
	tree      *bplus.BPlusTree[int]
	opts      []bplus.Option
	log       logrus.FieldLogger
}

// New starts an empty history over a fresh tree of the given order. opts are
// applied to every tree the history builds.
func New(order int, log logrus.FieldLogger, opts ...bplus.Option) (*History, error) {
	tree, err := bplus.NewIntTree(order, opts...)
	if err != nil {
		return nil, err
	}
	return &History{
		baseOrder: order,
		tree:      tree,
		opts:      opts,
		log:       log,
	}, nil
}

// Tree returns the current tree. It is replaced by SetOrder, Undo, Reset and Random.
func (h *History) Tree() *bplus.BPlusTree[int] { return h.tree }

func (h *History) Actions() []Action {
	return append([]Action(nil), h.actions...)
}

func (h *History) Len() int { return len(h.actions) }

func (h *History) Insert(key int) bool {
	if !h.tree.Insert(key) {
		return false
	}
	h.actions = append(h.actions, Action{Kind: Insert, Key: key})
	return true
}

func (h *History) Delete(key int) bool {
	if !h.tree.Delete(key) {
		return false
	}
	h.actions = append(h.actions, Action{Kind: Delete, Key: key})
	return true
}

// SetOrder replaces the tree with an empty tree of order n.
func (h *History) SetOrder(n int) error {
	tree, err := bplus.NewIntTree(n, h.opts...)
	if err != nil {
		return err
	}
	h.tree = tree
	h.actions = append(h.actions, Action{Kind: Order, Order: n})
	return nil
}

// Undo drops the last action and rebuilds the tree from the rest.
// It returns false if there was nothing to undo.
func (h *History) Undo() (bool, error) {
	if len(h.actions) == 0 {
		return false, nil
	}
	last := h.actions[len(h.actions)-1]
	h.actions = h.actions[:len(h.actions)-1]

	tree, err := h.replay()
	if err != nil {
		return false, err
	}
	h.tree = tree
	h.log.WithField("action", last.String()).Info("undo")
	return true, nil
}

func (h *History) replay() (*bplus.BPlusTree[int], error) {
	tree, err := bplus.NewIntTree(h.baseOrder, h.opts...)
	if err != nil {
		return nil, err
	}
	for i, a := range h.actions {
		var ok bool
		switch a.Kind {
		case Insert:
			ok = tree.Insert(a.Key)
		case Delete:
			ok = tree.Delete(a.Key)
		case Order:
			tree, err = bplus.NewIntTree(a.Order, h.opts...)
			ok = err == nil
		}
		if !ok {
			return nil, errors.Errorf("history: replay of action %d (%s) failed", i, a)
		}
	}
	return tree, nil
}

// Reset clears the history and empties the tree, keeping its order.
func (h *History) Reset() {
	order := h.tree.Order()
	tree, err := bplus.NewIntTree(order, h.opts...)
	if err != nil {
		// order came from a live tree, so it is valid
		panic(err)
	}
	h.baseOrder = order
	h.actions = nil
	h.tree = tree
}

// Random resets the history and inserts a random number of distinct random
// keys, each recorded as an insert. It returns the keys in insertion order.
func (h *History) Random(rng *rand.Rand, r conf.RandomRange) []int {
	h.Reset()

	total := r.MinKeys + rng.Intn(r.MaxKeys-r.MinKeys+1)
	if span := r.MaxKey - r.MinKey + 1; total > span {
		total = span
	}
	keys := make([]int, 0, total)
	for len(keys) < total {
		k := r.MinKey + rng.Intn(r.MaxKey-r.MinKey+1)
		if h.Insert(k) {
			keys = append(keys, k)
		}
	}
	h.log.WithField("keys", len(keys)).Info("random tree")
	return keys
}
