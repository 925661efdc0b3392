package render

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	bplus "BPlusViz/bplustree"
)

// EmptyMessage is what Render returns for a tree with no keys.
const EmptyMessage = "The tree is empty."

type Format string

const (
	FormatText Format = "text"
	FormatDOT  Format = "dot"
)

// ParseFormat accepts "text" or "dot".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatDOT:
		return f, nil
	}
	return "", errors.Errorf("render: unknown format %q", s)
}

// Source is the read side of a tree a Renderer needs.
type Source[K any] interface {
	ID() uuid.UUID
	Version() uint64
	IsEmpty() bool
	Export() bplus.Snapshot[K]
}

// Renderer renders trees and remembers the output per (tree, version, format,
// highlight), so redrawing an unchanged tree skips the export.
type Renderer[K comparable] struct {
	cache *ristretto.Cache[string, string]
}

func NewRenderer[K comparable](entries int64) (*Renderer[K], error) {
	if entries < 1 {
		return nil, errors.Errorf("render: cache entries %d must be positive", entries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: entries * 10,
		MaxCost:     entries,
		BufferItems: 64,

		// cost is counted in entries, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "render: create cache")
	}
	return &Renderer[K]{cache: cache}, nil
}

func cacheKey[K any](src Source[K], format Format, highlight *K) string {
	h := "-"
	if highlight != nil {
		h = fmt.Sprint(*highlight)
	}
	return fmt.Sprintf("%s/%d/%s/%s", src.ID(), src.Version(), format, h)
}

// Render draws src in the given format. The highlight only affects FormatDOT.
func (r *Renderer[K]) Render(src Source[K], format Format, highlight *K) string {
	if src.IsEmpty() {
		return EmptyMessage
	}
	if format != FormatDOT {
		highlight = nil
	}

	key := cacheKey(src, format, highlight)
	if out, ok := r.cache.Get(key); ok {
		return out
	}

	var out string
	switch format {
	case FormatDOT:
		out = DOT(src.Export(), highlight)
	default:
		out = Text(src.Export())
	}
	r.cache.Set(key, out, 1)
	return out
}

// Wait blocks until pending cache writes are visible.
func (r *Renderer[K]) Wait() {
	r.cache.Wait()
}

func (r *Renderer[K]) Close() {
	r.cache.Close()
}
