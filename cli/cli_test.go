package cli

import (
	"bufio"
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bplus "BPlusViz/bplustree"
	"BPlusViz/conf"
	"BPlusViz/history"
	"BPlusViz/render"
)

func run(t *testing.T, order int, input string) (string, *history.History) {
	t.Helper()
	color.NoColor = true

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := conf.NewCfg()
	cfg.Order = order
	cfg.Random = conf.RandomRange{MinKeys: 4, MaxKeys: 8, MinKey: 1, MaxKey: 20}

	h, err := history.New(cfg.Order, log, bplus.WithInvariantChecks(true))
	require.NoError(t, err)
	r, err := render.NewRenderer[int](cfg.CacheEntries)
	require.NoError(t, err)
	t.Cleanup(r.Close)

	var out bytes.Buffer
	c, err := NewCli(bufio.NewScanner(strings.NewReader(input)), &out, h, r, cfg, rand.New(rand.NewSource(3)), log)
	require.NoError(t, err)
	c.Start()
	return out.String(), h
}

func TestCliInsertAndShow(t *testing.T) {
	out, h := run(t, 4, "insert 1 2 3 4 5\nkeys\nstats\nexit\n")
	assert.Contains(t, out, "Level 0: [3]\nLevel 1: [1 2] [3 4 5]")
	assert.Contains(t, out, "[1 2 3 4 5]")
	assert.Contains(t, out, "order=4 keys=5 height=2 history=5")
	assert.Equal(t, 5, h.Len())
}

func TestCliMessages(t *testing.T) {
	out, _ := run(t, 4, "insert x\ninsert 5\ninsert 5\ndelete 9\norder 2\norder abc\nfind 5\nfind 6\nbogus\n")
	assert.Contains(t, out, msgKeyNotInt)
	assert.Contains(t, out, "5: "+msgDuplicate)
	assert.Contains(t, out, "9: "+msgMissing)
	assert.Contains(t, out, msgOrderLow)
	assert.Contains(t, out, msgBadOrder)
	assert.Contains(t, out, "5: found")
	assert.Contains(t, out, "6: "+msgMissing)
	assert.Contains(t, out, `Unknown command "bogus"`)
}

func TestCliUndoAndReset(t *testing.T) {
	out, h := run(t, 4, "undo\ninsert 1 2\ndelete 1\nundo\n")
	assert.Contains(t, out, msgNothingYet)
	assert.Equal(t, []int{1, 2}, h.Tree().Keys())

	_, h = run(t, 4, "insert 1 2\nreset\n")
	assert.True(t, h.Tree().IsEmpty())
	assert.Equal(t, 0, h.Len())
}

func TestCliShowDot(t *testing.T) {
	out, _ := run(t, 4, "insert 1\nshow dot\nshow svg\n")
	assert.Contains(t, out, "digraph G {")
	assert.Contains(t, out, "Usage: SHOW [text|dot]")
}

func TestCliRandomAndCheck(t *testing.T) {
	out, h := run(t, 3, "random\ncheck\ndump\n")
	assert.GreaterOrEqual(t, h.Tree().Len(), 4)
	assert.LessOrEqual(t, h.Tree().Len(), 8)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "Level 0:")
}

func TestCliOrderChange(t *testing.T) {
	_, h := run(t, 5, "insert 1\norder 3\ninsert 7\n")
	assert.Equal(t, 3, h.Tree().Order())
	assert.Equal(t, []int{7}, h.Tree().Keys())
}
