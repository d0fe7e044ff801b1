package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/minihttp"
	"github.com/indigo-web/minihttp/config"
)

type flags struct {
	config, directory, addr, metrics, store, logLevel string
}

func parseFlags(args []string) (flags, error) {
	var f flags
	set := flag.NewFlagSet("minihttp", flag.ContinueOnError)
	set.StringVar(&f.config, "config", "", "path to a YAML config file")
	set.StringVar(&f.directory, "directory", "", "directory the /files/ route reads from and writes to")
	set.StringVar(&f.addr, "addr", "", "address to listen at")
	set.StringVar(&f.metrics, "metrics", "", "address to expose prometheus metrics at")
	set.StringVar(&f.store, "store", "", "blob store backend: fs or memory")
	set.StringVar(&f.logLevel, "log-level", "", "one of debug, info, warn or error")

	return f, set.Parse(args)
}

// loadConfig reads the config file if any and applies the flags on top of it.
func loadConfig(f flags) (*config.Config, error) {
	cfg := config.Default()

	if len(f.config) > 0 {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}

	override(&cfg.Files.Directory, f.directory)
	override(&cfg.NET.Addr, f.addr)
	override(&cfg.Metrics.Addr, f.metrics)
	override(&cfg.Files.Store, f.store)
	override(&cfg.Log.Level, f.logLevel)

	return cfg, cfg.Validate()
}

func override(dst *string, value string) {
	if len(value) > 0 {
		*dst = value
	}
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app, err := minihttp.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		app.Stop()
	}()

	if err = app.Serve(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
