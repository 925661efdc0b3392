package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	bplus "BPlusViz/bplustree"
	"BPlusViz/conf"
	"BPlusViz/history"
	"BPlusViz/render"
)

const (
	msgKeyNotInt  = "The key must be an integer."
	msgDuplicate  = "The key is already present in the tree."
	msgMissing    = "The key is not present in the tree."
	msgBadOrder   = "The degree must be an integer."
	msgOrderLow   = "The degree of the tree must be no less than 3."
	msgNothingYet = "Nothing to undo."
)

type Cli struct {
	scanner  *bufio.Scanner
	out      io.Writer
	hist     *history.History
	renderer *render.Renderer[int]
	format   render.Format
	random   conf.RandomRange
	rng      *rand.Rand
	log      logrus.FieldLogger

	errColor  *color.Color
	infoColor *color.Color
}

func NewCli(s *bufio.Scanner, out io.Writer, h *history.History, r *render.Renderer[int], cfg *conf.Cfg, rng *rand.Rand, log logrus.FieldLogger) (*Cli, error) {
	format, err := render.ParseFormat(cfg.RenderFormat)
	if err != nil {
		return nil, err
	}
	return &Cli{
		scanner:   s,
		out:       out,
		hist:      h,
		renderer:  r,
		format:    format,
		random:    cfg.Random,
		rng:       rng,
		log:       log,
		errColor:  color.New(color.FgRed),
		infoColor: color.New(color.FgCyan),
	}, nil
}

// Start runs the read-eval loop until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
B+ Tree CLI

Available Commands:
  INSERT <key>...   Insert one or more integer keys
  DELETE <key>...   Delete one or more keys
  FIND <key>        Report whether a key is present
  ORDER <n>         Start over with an empty tree of order n (n >= 3)
  UNDO              Undo the last successful command
  RESET             Empty the tree and clear the history
  RANDOM            Build a random tree
  SHOW [text|dot]   Draw the tree
  KEYS              List the keys in order
  STATS             Print order, size and height
  DUMP              Print every node level by level
  CHECK             Verify the tree invariants
  HELP              Show this message
  EXIT              Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

func (c *Cli) errorf(format string, args ...interface{}) {
	c.errColor.Fprintf(c.out, format+"\n", args...)
}

func (c *Cli) infof(format string, args ...interface{}) {
	c.infoColor.Fprintf(c.out, format+"\n", args...)
}

// processInput runs one command line and reports whether the session continues.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]
	switch command {
	default:
		c.errorf("Unknown command %q", command)
	case "insert", "set":
		c.processInsertCommand(args)
	case "delete", "del":
		c.processDeleteCommand(args)
	case "find", "get":
		c.processFindCommand(args)
	case "order", "degree":
		c.processOrderCommand(args)
	case "undo":
		c.processUndoCommand()
	case "reset":
		c.hist.Reset()
		c.show(c.format, nil)
	case "random":
		keys := c.hist.Random(c.rng, c.random)
		var last *int
		if len(keys) > 0 {
			last = &keys[len(keys)-1]
		}
		c.show(c.format, last)
	case "show":
		c.processShowCommand(args)
	case "keys":
		fmt.Fprintln(c.out, c.hist.Tree().Keys())
	case "stats":
		t := c.hist.Tree()
		fmt.Fprintf(c.out, "order=%d keys=%d height=%d history=%d\n", t.Order(), t.Len(), t.Height(), c.hist.Len())
	case "dump":
		if err := c.hist.Tree().Dump(c.out); err != nil {
			c.errorf("dump: %v", err)
		}
	case "check":
		if err := c.hist.Tree().Validate(); err != nil {
			c.errorf("%v", err)
			return true
		}
		c.infof("OK")
	case "help":
		c.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		k, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrap(err, msgKeyNotInt)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}
	keys, err := parseKeys(args)
	if err != nil {
		c.errorf(msgKeyNotInt)
		return
	}
	var last *int
	for i, k := range keys {
		if !c.hist.Insert(k) {
			c.log.WithField("key", k).Warn("duplicate key")
			c.errorf("%d: %s", k, msgDuplicate)
			continue
		}
		last = &keys[i]
	}
	if last != nil {
		c.show(c.format, last)
	}
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "Usage: DELETE <key>...")
		return
	}
	keys, err := parseKeys(args)
	if err != nil {
		c.errorf(msgKeyNotInt)
		return
	}
	deleted := false
	for _, k := range keys {
		if !c.hist.Delete(k) {
			c.log.WithField("key", k).Warn("missing key")
			c.errorf("%d: %s", k, msgMissing)
			continue
		}
		deleted = true
	}
	if deleted {
		c.show(c.format, nil)
	}
}

func (c *Cli) processFindCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: FIND <key>")
		return
	}
	keys, err := parseKeys(args)
	if err != nil {
		c.errorf(msgKeyNotInt)
		return
	}
	if c.hist.Tree().Contains(keys[0]) {
		c.infof("%d: found", keys[0])
		return
	}
	c.errorf("%d: %s", keys[0], msgMissing)
}

func (c *Cli) processOrderCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: ORDER <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		c.errorf(msgBadOrder)
		return
	}
	if err := c.hist.SetOrder(n); err != nil {
		if errors.Is(err, bplus.ErrInvalidOrder) {
			c.errorf(msgOrderLow)
			return
		}
		c.errorf("%v", err)
		return
	}
	c.show(c.format, nil)
}

func (c *Cli) processUndoCommand() {
	ok, err := c.hist.Undo()
	if err != nil {
		c.log.WithError(err).Error("undo failed")
		c.errorf("%v", err)
		return
	}
	if !ok {
		c.errorf(msgNothingYet)
		return
	}
	c.show(c.format, nil)
}

func (c *Cli) processShowCommand(args []string) {
	format := c.format
	if len(args) > 0 {
		f, err := render.ParseFormat(strings.ToLower(args[0]))
		if err != nil {
			c.errorf("Usage: SHOW [text|dot]")
			return
		}
		format = f
	}
	c.show(format, nil)
}

func (c *Cli) show(format render.Format, highlight *int) {
	fmt.Fprintln(c.out, c.renderer.Render(c.hist.Tree(), format, highlight))
}
