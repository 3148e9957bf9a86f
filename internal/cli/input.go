// Package cli provides an interactive stdin loop for trying the abbreviation
// engine out by hand, separate from cmd/iso4's batch/flag handling.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iso4nlp/abbrev/pkg/engine"
)

// InputHandler reads titles from stdin, one per line, and prints their
// abbreviation; with explain set it also prints every match site considered
// and whether it was applied or dropped.
type InputHandler struct {
	engine    *engine.Engine
	languages []string
	explain   bool
}

// NewInputHandler builds an InputHandler around an already-constructed Engine.
func NewInputHandler(e *engine.Engine, languages []string, explain bool) *InputHandler {
	return &InputHandler{engine: e, languages: languages, explain: explain}
}

// Start begins the read-abbreviate-print loop. It returns when stdin is
// exhausted or an error occurs reading it.
func (h *InputHandler) Start() error {
	log.Print("ISO-4 abbreviation engine CLI")
	log.Printf("loaded %d patterns", h.engine.Size())
	log.Print("type a title and press Enter (Ctrl+D to exit):")

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		title := strings.TrimSpace(line)
		if title != "" {
			h.handleTitle(title)
		}
		if err != nil {
			return nil
		}
	}
}

func (h *InputHandler) handleTitle(title string) {
	if h.explain {
		explanation := h.engine.Explain(title, h.languages)
		fmt.Printf("%s -> %s\n", title, explanation.Abbreviation)
		for _, m := range explanation.Matches {
			status := "applied"
			if m.Dropped {
				status = "dropped: " + m.Reason
			}
			fmt.Printf("  [%d,%d) %q via %q (priority %d) %s\n", m.Start, m.End, m.Abbr, m.Pattern, m.Priority, status)
		}
		return
	}

	candidates := h.engine.PotentialPatterns(title, false)
	abbr := h.engine.MakeAbbreviation(title, h.languages, candidates)
	fmt.Printf("%s -> %s\n", title, abbr)
}
