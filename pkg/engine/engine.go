/*
Package engine builds and queries an ISO-4 title-abbreviation engine from a
List of Title Word Abbreviations (LTWA) dictionary and a short-word list.

Construction (Build) is the only place the engine touches I/O, and it never
opens a file itself — callers hand it an io.Reader. Every query method
afterward is a pure, total function of the engine and its arguments: no
locking is needed to share an *Engine across goroutines.
*/
package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/iso4nlp/abbrev/internal/collate"
	"github.com/iso4nlp/abbrev/internal/config"
	"github.com/iso4nlp/abbrev/internal/logger"
	"github.com/iso4nlp/abbrev/internal/patterntree"
	"github.com/iso4nlp/abbrev/pkg/ltwa"
)

// Engine is an immutable, built-once abbreviation index. The zero value is
// not usable; construct one with Build.
type Engine struct {
	dictPatterns      *patterntree.Tree
	nonprefixPatterns *patterntree.Tree
	badPatterns       []ltwa.Pattern
	shortWords        []string
	cfg               *config.Config
	log               *log.Logger
	size              int
}

// Option customizes Build. The zero set of options yields config.DefaultConfig()
// and a warn-level logger.
type Option func(*Engine)

// WithConfig overrides the engine's tuning configuration.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger overrides the engine's construction-time logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Build parses an LTWA dictionary and a short-word list and indexes them
// into a queryable Engine. Malformed LTWA rows are skipped and logged, not
// fatal; use ltwa.ParseStrict directly beforehand if fail-fast parsing is
// wanted instead.
func Build(ltwaR io.Reader, shortWordsR io.Reader, opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg: config.DefaultConfig(),
		log: logger.New("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log.SetLevel(parseLevel(e.cfg.Logger.Level))

	patterns, lineErrors, err := ltwa.ParseLTWAWithMinLen(ltwaR, e.cfg.Match.MinPatternLen)
	if err != nil {
		return nil, fmt.Errorf("engine: reading LTWA: %w", err)
	}
	if len(lineErrors) > 0 {
		e.log.Warnf("skipped %d malformed LTWA lines", len(lineErrors))
	}

	shortWords, err := ltwa.ParseShortWords(shortWordsR)
	if err != nil {
		return nil, fmt.Errorf("engine: reading short words: %w", err)
	}
	e.shortWords = shortWords

	e.dictPatterns = patterntree.New(e.cfg.Tree.MaxNodeSize)
	e.nonprefixPatterns = patterntree.New(e.cfg.Tree.MaxNodeSize)

	for _, p := range patterns {
		e.size++
		if p.IsBad() {
			e.badPatterns = append(e.badPatterns, p)
			continue
		}
		key := collate.PromiscuouslyNormalize(p.Body(false))
		if p.StartDash {
			e.nonprefixPatterns.Add(key, p)
		} else {
			e.dictPatterns.Add(key, p)
		}
	}

	e.log.Infof("built engine with %d patterns (%d bad, %d short words)", e.size, len(e.badPatterns), len(e.shortWords))
	return e, nil
}

// Size returns the total number of LTWA patterns indexed, including bad
// patterns.
func (e *Engine) Size() int {
	return e.size
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
