package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/plus3/dashshot/config"
	"github.com/plus3/dashshot/frontend/terminal"
	"github.com/plus3/dashshot/frontend/window"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	run := window.Run
	if cfg.Frontend == config.FrontendTerminal {
		run = terminal.Run
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}
