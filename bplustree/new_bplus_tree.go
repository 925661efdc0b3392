package bplus

import (
	"cmp"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MinOrder is the smallest order a tree can be built with.
const MinOrder = 3

type options struct {
	log             logrus.FieldLogger
	checkInvariants bool
}

// Option configures a tree at construction time.
type Option func(*options)

// WithLogger routes the tree's structural debug events to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithInvariantChecks makes every successful Insert and Delete run Validate
// and panic if the tree is found corrupt.
func WithInvariantChecks(on bool) Option {
	return func(o *options) {
		o.checkInvariants = on
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// NewBPlusTree creates an empty tree of the given order whose keys are ordered by cmp.
func NewBPlusTree[K any](order int, cmp func(a, b K) int, opts ...Option) (*BPlusTree[K], error) {
	if order < MinOrder {
		return nil, errors.Wrapf(ErrInvalidOrder, "order %d is below minimum %d", order, MinOrder)
	}
	if cmp == nil {
		return nil, errors.New("bplus: nil comparison function")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	t := &BPlusTree[K]{
		id:              uuid.New(),
		order:           order,
		limits:          NewLimits(order),
		nodes:           newArena[K](),
		cmp:             cmp,
		checkInvariants: o.checkInvariants,
	}
	t.log = o.log.WithFields(logrus.Fields{"tree": t.id.String(), "order": order})
	t.root = t.newNode(NodeLeaf).id
	return t, nil
}

// NewIntTree creates an empty tree of int keys in natural order.
func NewIntTree(order int, opts ...Option) (*BPlusTree[int], error) {
	return NewBPlusTree(order, cmp.Compare[int], opts...)
}

// ID identifies this tree instance. Two trees never share an ID.
func (t *BPlusTree[K]) ID() uuid.UUID { return t.id }

func (t *BPlusTree[K]) Order() int { return t.order }

func (t *BPlusTree[K]) Limits() Limits { return t.limits }

// Len returns the number of keys stored.
func (t *BPlusTree[K]) Len() int { return t.size }

// Version increments on every insert or delete that changed the tree.
func (t *BPlusTree[K]) Version() uint64 { return t.version }

func (t *BPlusTree[K]) IsEmpty() bool {
	return len(t.node(t.root).key) == 0
}

// Height returns the number of levels, counting the leaf level. An empty tree has height 1.
func (t *BPlusTree[K]) Height() int {
	h := 1
	for n := t.node(t.root); !n.isLeaf(); n = t.node(n.children[0]) {
		h++
	}
	return h
}

// mutated is called after every successful structural change.
func (t *BPlusTree[K]) mutated() {
	t.version++
	if !t.checkInvariants {
		return
	}
	if err := t.Validate(); err != nil {
		t.log.WithError(err).Error("invariant check failed")
		panic(err)
	}
}
