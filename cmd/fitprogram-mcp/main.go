package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/fitprogram/internal/catalog"
	"github.com/meltforce/fitprogram/internal/energy"
	"github.com/meltforce/fitprogram/internal/localstate"
	"github.com/meltforce/fitprogram/internal/mcp"
	"github.com/meltforce/fitprogram/internal/planner"
	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/registry"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	remote := flag.String("remote", "", "FitProgram server URL (e.g. https://fitprogram.tail1234.ts.net); local mode when empty")
	weightKg := flag.Float64("weight", energy.DefaultWeightKg, "body weight in kg (local mode)")
	weeks := flag.Int("weeks", program.DefaultWeeks, "standard weeks (local mode)")
	stateDir := flag.String("state", "", "completion database directory (local mode, default ~/.fitprogram)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitprogram-mcp", Version)
		return
	}

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *remote != "" {
		ds = mcp.NewHTTPClient(*remote)
		log.Info("remote mode", "server", *remote)
	} else {
		prog, err := program.Generate(catalog.Default(), registry.Default(), *weightKg,
			program.WithWeeks(*weeks),
			program.WithLogger(log),
		)
		if err != nil {
			log.Error("program generation failed", "error", err)
			os.Exit(1)
		}

		dir := *stateDir
		if dir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				log.Error("failed to get home directory", "error", err)
				os.Exit(1)
			}
			dir = filepath.Join(homeDir, ".fitprogram")
		}
		state, err := localstate.Open(dir)
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer state.Close()

		ds = planner.New(prog, state, log)
		log.Info("local mode", "state", dir, "days", prog.Len())
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
