package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/vitrine/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	term := flag.String("term", "", "search term to run at startup, e.g. medium (optional)")
	value := flag.String("value", "", "search value to run at startup, e.g. bronze (optional)")
	debug := flag.Bool("debug", false, "write debug-level logs with caller info")
	flag.Parse()

	if (*term == "") != (*value == "") {
		fmt.Fprintln(os.Stderr, "vitrine: --term and --value must be given together")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		StartTerm:  *term,
		StartValue: *value,
		Debug:      *debug,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "vitrine: %v\n", err)
		return 1
	}
	return 0
}
