/*
Command iso4 demonstrates the ISO-4 title-abbreviation engine.

It loads a List of Title Word Abbreviations (LTWA) dictionary and a
short-word list from disk, builds an Engine, and either abbreviates a single
title given on the command line or drops into an interactive loop reading
titles from stdin.

# Usage

	iso4 -ltwa ltwa.tsv -shortwords shortwords.txt -title "Journal of Chemical Physics"

Without -title, iso4 reads titles interactively from stdin:

	iso4 -ltwa ltwa.tsv -shortwords shortwords.txt

# Flags

	-ltwa string
	    Path to the LTWA dictionary (tab-separated pattern/replacement/languages)
	-shortwords string
	    Path to the short-word list, one word per line
	-title string
	    Abbreviate this single title and exit instead of reading stdin
	-lang string
	    Comma-separated language filter (default: unrestricted)
	-explain
	    Print per-pattern match diagnostics alongside the abbreviation
	-d
	    Enable debug logging
	-version
	    Print the version banner and exit
	-config string
	    Path to a TOML tuning file (created with defaults if missing);
	    built-in defaults are used when omitted

This binary is the only part of this module that touches the filesystem;
pkg/engine and pkg/ltwa consume io.Reader and never open a file themselves.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iso4nlp/abbrev/internal/cli"
	"github.com/iso4nlp/abbrev/internal/config"
	"github.com/iso4nlp/abbrev/internal/utils"
	"github.com/iso4nlp/abbrev/pkg/engine"
)

const (
	version = "0.1.0"
	repo    = "https://github.com/iso4nlp/abbrev"
)

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ iso4 ] ISO-4 title abbreviation engine")
	logger.Print("", "version", version)
	logger.Print("Github Repo", "gh", repo)
	logger.Print("")
}

func main() {
	ltwaPath := flag.String("ltwa", "ltwa.tsv", "Path to the LTWA dictionary")
	shortWordsPath := flag.String("shortwords", "shortwords.txt", "Path to the short-word list")
	title := flag.String("title", "", "Abbreviate this single title and exit")
	langs := flag.String("lang", "", "Comma-separated language filter (unrestricted if empty)")
	explain := flag.Bool("explain", false, "Print per-pattern match diagnostics")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print the version banner and exit")
	configPath := flag.String("config", "", "Path to a TOML tuning file (created with defaults if missing)")
	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		resolved := utils.GetAbsolutePath(*configPath)
		loaded, err := config.InitConfig(resolved)
		if err != nil {
			log.Fatalf("loading config from %s: %v", resolved, err)
		}
		cfg = loaded
		log.Debugf("using config at %s", resolved)
	} else if execDir, err := utils.GetExecutableDir(); err == nil {
		log.Debugf("no -config given, running from %s; using built-in defaults", execDir)
	}

	if !*debugMode && cfg.Logger.ReportTimestamp {
		log.SetReportTimestamp(true)
	}

	ltwaFile, err := os.Open(*ltwaPath)
	if err != nil {
		log.Fatalf("opening LTWA file: %v", err)
	}
	defer ltwaFile.Close()

	shortWordsFile, err := os.Open(*shortWordsPath)
	if err != nil {
		log.Fatalf("opening short-word file: %v", err)
	}
	defer shortWordsFile.Close()

	e, err := engine.Build(ltwaFile, shortWordsFile, engine.WithConfig(cfg))
	if err != nil {
		log.Fatalf("building engine: %v", err)
	}

	var languages []string
	if *langs != "" {
		languages = strings.Split(*langs, ",")
	}

	if *title != "" {
		if *explain {
			explanation := e.Explain(*title, languages)
			fmt.Printf("%s -> %s\n", *title, explanation.Abbreviation)
			for _, m := range explanation.Matches {
				status := "applied"
				if m.Dropped {
					status = "dropped: " + m.Reason
				}
				fmt.Printf("  [%d,%d) %q via %q (priority %d) %s\n", m.Start, m.End, m.Abbr, m.Pattern, m.Priority, status)
			}
			return
		}
		candidates := e.PotentialPatterns(*title, false)
		fmt.Println(e.MakeAbbreviation(*title, languages, candidates))
		return
	}

	handler := cli.NewInputHandler(e, languages, *explain)
	if err := handler.Start(); err != nil {
		log.Fatalf("%v", err)
	}
}
