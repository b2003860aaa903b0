package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"spending-analyzer/internal/gateway"
	"spending-analyzer/internal/logger"
	"spending-analyzer/internal/presenter"
	"spending-analyzer/internal/usecase"
)

func main() {
	// Define command-line flags
	statementFile := flag.String("file", "", "Path to the statement CSV or XLSX file (required)")
	rulesFile := flag.String("rules", "", "Path to a YAML rule table (defaults to the built-in rules)")
	format := flag.String("format", "text", "Output format: text or json")
	expandStr := flag.String("expand", "", "Comma-separated list of categories to expand, or 'all'")
	showAll := flag.Bool("all", false, "Also list every merchant with its exact total")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Validate required flags
	if *statementFile == "" {
		fmt.Fprintln(os.Stderr, "Error: the -file flag is required.")
		flag.Usage()
		os.Exit(1)
	}
	if *format != "text" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q.\n", *format)
		flag.Usage()
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := logger.New(level)
	ctx := logger.WithContext(context.Background(), log)

	// --- Dependency Injection (Wiring the application) ---
	classifier, err := usecase.LoadClassifier(ctx, gateway.NewYAMLRuleRepository(), *rulesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load rules")
	}
	analysis := usecase.NewAnalysisUseCase(gateway.NewFileStatementRepository(), classifier)
	session := usecase.NewSession(analysis)

	// --- Execute the Usecase ---
	report, err := session.Upload(ctx, *statementFile)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	// --- Present the Output ---
	if *format == "json" {
		err = presenter.RenderJSON(os.Stdout, report)
	} else {
		err = presenter.RenderText(os.Stdout, report, presenter.Options{
			Expand:          parseExpand(*expandStr),
			ShowExactTotals: *showAll,
		})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("could not write report")
	}
}

func parseExpand(s string) *presenter.ExpandState {
	state := presenter.NewExpandState()
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		switch {
		case name == "":
		case strings.EqualFold(name, "all"):
			state.ExpandAll()
		default:
			state.Toggle(name)
		}
	}
	return state
}
