package main

import (
	"bufio"
	"flag"
	"math/rand"
	"os"
	"time"

	bplus "BPlusViz/bplustree"
	"BPlusViz/cli"
	"BPlusViz/conf"
	"BPlusViz/history"
	"BPlusViz/logger"
	"BPlusViz/render"
)

func main() {
	configPath := flag.String("config", "bptree.ini", "path to the ini configuration file")
	flag.Parse()

	cfg, err := conf.Load(*configPath)
	if err != nil {
		logger.Logger.SetOutput(os.Stderr)
		logger.Logger.Fatalf("%v", err)
	}

	if err := logger.InitLogger(logger.LogConfig{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		logger.Warnf("%v, logging to stdout only", err)
	}
	log := logger.Component("cli")

	hist, err := history.New(cfg.Order, log,
		bplus.WithLogger(logger.Component("bplus")),
		bplus.WithInvariantChecks(cfg.CheckInvariants))
	if err != nil {
		log.Fatalf("create tree: %v", err)
	}

	renderer, err := render.NewRenderer[int](cfg.CacheEntries)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer renderer.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	repl, err := cli.NewCli(bufio.NewScanner(os.Stdin), os.Stdout, hist, renderer, cfg, rng, log)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Infof("order=%d format=%s", cfg.Order, cfg.RenderFormat)
	repl.Start()
}
