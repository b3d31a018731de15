package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dzcontrol/planner/pkg/config"
	"github.com/dzcontrol/planner/pkg/interfaces/cli/commands"
	"github.com/dzcontrol/planner/pkg/logger"
)

func main() {
	// Optional .env for the PLANNER_* variables; absence is fine.
	_ = godotenv.Load()

	// Command line flags
	var (
		configFile = flag.String("config", "", "Path to a planner.yaml configuration file")
		dataDir    = flag.String("data", "", "Directory holding the planning document")
		date       = flag.String("date", "", "Plan date (YYYY-MM-DD, default today)")
		filter     = flag.String("filter", "", "Customer filter: kfc or non-kfc (default all)")
		report     = flag.String("report", "plan", "Report: needs, plan, shortages, kfc")
		format     = flag.String("format", "", "Output format: text, json, csv")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags win over config file and environment.
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *verbose {
		cfg.Logger.Level = logger.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logger).WithComponent("planner")

	cmd := commands.NewPlanCommand(commands.Config{
		DataDir: cfg.DataDir,
		Date:    *date,
		Filter:  *filter,
		Report:  *report,
		Format:  cfg.Format,
		Verbose: *verbose,
		Help:    *help,
	}, log)

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
