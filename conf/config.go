package conf

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	bplus "BPlusViz/bplustree"
)

/*
[tree]
order            = 5
check_invariants = false

[random]
min_keys = 16
max_keys = 64
min_key  = 8
max_key  = 128

[render]
format        = text
cache_entries = 256

[log]
level = info
file  =
*/
type Cfg struct {
	Raw *ini.File

	// tree
	Order           int
	CheckInvariants bool

	// random tree generation, all bounds inclusive
	Random RandomRange

	// render
	RenderFormat string
	CacheEntries int64

	// logs
	LogLevel string
	LogFile  string
}

type RandomRange struct {
	MinKeys int
	MaxKeys int
	MinKey  int
	MaxKey  int
}

func NewCfg() *Cfg {
	return &Cfg{
		Raw:             ini.Empty(),
		Order:           5,
		CheckInvariants: false,
		Random: RandomRange{
			MinKeys: 16,
			MaxKeys: 64,
			MinKey:  8,
			MaxKey:  128,
		},
		RenderFormat: "text",
		CacheEntries: 256,
		LogLevel:     "info",
	}
}

// Load reads path over the defaults. A missing file leaves the defaults in place.
func Load(path string) (*Cfg, error) {
	cfg := NewCfg()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if err := cfg.apply(f); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (cfg *Cfg) apply(f *ini.File) error {
	cfg.Raw = f

	tree := f.Section("tree")
	var err error
	if cfg.Order, err = intKey(tree, "order", cfg.Order); err != nil {
		return err
	}
	if tree.HasKey("check_invariants") {
		if cfg.CheckInvariants, err = tree.Key("check_invariants").Bool(); err != nil {
			return errors.Wrap(err, "tree.check_invariants")
		}
	}

	random := f.Section("random")
	for _, k := range []struct {
		name string
		dst  *int
	}{
		{"min_keys", &cfg.Random.MinKeys},
		{"max_keys", &cfg.Random.MaxKeys},
		{"min_key", &cfg.Random.MinKey},
		{"max_key", &cfg.Random.MaxKey},
	} {
		if *k.dst, err = intKey(random, k.name, *k.dst); err != nil {
			return err
		}
	}

	render := f.Section("render")
	cfg.RenderFormat = render.Key("format").MustString(cfg.RenderFormat)
	entries, err := intKey(render, "cache_entries", int(cfg.CacheEntries))
	if err != nil {
		return err
	}
	cfg.CacheEntries = int64(entries)

	log := f.Section("log")
	cfg.LogLevel = log.Key("level").MustString(cfg.LogLevel)
	cfg.LogFile = log.Key("file").MustString(cfg.LogFile)
	return nil
}

func intKey(s *ini.Section, name string, def int) (int, error) {
	if !s.HasKey(name) {
		return def, nil
	}
	v, err := s.Key(name).Int()
	if err != nil {
		return 0, errors.Wrapf(err, "%s.%s", s.Name(), name)
	}
	return v, nil
}

// Validate rejects settings no component can run with.
func (cfg *Cfg) Validate() error {
	if cfg.Order < bplus.MinOrder {
		return errors.Wrapf(bplus.ErrInvalidOrder, "tree.order %d", cfg.Order)
	}
	r := cfg.Random
	if r.MinKeys < 0 || r.MinKeys > r.MaxKeys {
		return errors.Errorf("random.min_keys %d / max_keys %d out of order", r.MinKeys, r.MaxKeys)
	}
	if r.MinKey > r.MaxKey {
		return errors.Errorf("random.min_key %d greater than max_key %d", r.MinKey, r.MaxKey)
	}
	if r.MaxKeys > r.MaxKey-r.MinKey+1 {
		return errors.Errorf("random.max_keys %d exceeds the %d distinct keys in range", r.MaxKeys, r.MaxKey-r.MinKey+1)
	}
	switch cfg.RenderFormat {
	case "text", "dot":
	default:
		return errors.Errorf("render.format %q must be text or dot", cfg.RenderFormat)
	}
	if cfg.CacheEntries < 1 {
		return errors.Errorf("render.cache_entries %d must be positive", cfg.CacheEntries)
	}
	return nil
}
