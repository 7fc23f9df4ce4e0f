// Package icongen turns the flattened icon catalog into the source for a
// strongly-typed icon enumeration and its class-list behavior.
//
// The pipeline is a single deterministic transform: flatten the catalog,
// validate and normalize each record, deduplicate on ReactName, and append
// one fragment per surviving record to each of two lock-step output buffers.
package icongen

import (
	"strings"

	"github.com/uzytkownik/patternfly-icongen/catalog"
	"github.com/uzytkownik/patternfly-icongen/errors"
	"go.uber.org/zap"
)

// Variant is one normalized, deduplicated icon record, ready for emission.
type Variant struct {
	// Ident is the sanitized enum identifier, e.g. "Wrench"
	Ident string
	// Name is the original upstream icon name, e.g. "wrench"
	Name string
	// Helper is the class-list helper the dispatch clause calls, named after
	// the normalized style: fas, fab, far, plain or pf
	Helper string
	// Feature is the feature gate the variant belongs to, or empty
	Feature string
	// Doc is the contextual-usage documentation text
	Doc string
}

// Emitter renders per-variant fragments and the surrounding declarations for
// one target language.
type Emitter interface {
	// VariantFragment renders one enum variant entry
	VariantFragment(v Variant) string
	// DispatchFragment renders the dispatch clause matching that entry
	DispatchFragment(v Variant) string

	// TypeHeader and TypeFooter wrap the accumulated variant entries
	TypeHeader() string
	TypeFooter() string
	// ImplHeader and ImplFooter wrap the accumulated dispatch clauses
	ImplHeader() string
	ImplFooter() string

	// Language returns the target language name (e.g. "rust")
	Language() string
	// FileExtension returns the output file extension (e.g. "rs")
	FileExtension() string
}

// Generator accumulates the two output blocks over one catalog traversal.
//
// A Generator is single-shot: the known-set and buffers are not reset between
// runs, so construct a fresh instance for every run.
type Generator struct {
	emitter Emitter
	logger  *zap.SugaredLogger

	seen        map[string]struct{}
	typeDefs    strings.Builder
	classesImpl strings.Builder

	count               int
	skippedPlaceholders int
	skippedDuplicates   int
}

// New creates a Generator emitting through the given emitter
func New(emitter Emitter, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Generator{
		emitter: emitter,
		logger:  logger,
		seen:    make(map[string]struct{}),
	}
}

// Run flattens the catalog tree, processes every leaf record in depth-first,
// left-to-right order, and returns the finished output blocks.
//
// The first error aborts the run; nothing partial is returned. A truncated
// enum spliced into the library would be worse than no output at all.
func (g *Generator) Run(entries []catalog.Entry) (*Result, error) {
	records := catalog.Flatten(entries)

	for _, rec := range records {
		if err := g.processRecord(rec); err != nil {
			return nil, err
		}
	}

	g.logger.Infow("Catalog processed",
		"variants", g.count,
		"placeholders_skipped", g.skippedPlaceholders,
		"duplicates_skipped", g.skippedDuplicates)

	return g.emit(), nil
}

// processRecord validates, normalizes and emits a single record.
//
// Placeholder records (no Name) and duplicate ReactNames are normal skips,
// fully transparent to the output. An unknown style is the one fatal case.
func (g *Generator) processRecord(rec catalog.Record) error {
	if rec.Name == "" {
		// Placeholder: no output, no dedupe registration
		g.skippedPlaceholders++
		g.logger.Debugw("Skipping placeholder record",
			"react_name", rec.ReactName)
		return nil
	}

	if _, dup := g.seen[rec.ReactName]; dup {
		// First occurrence in catalog order wins
		g.skippedDuplicates++
		g.logger.Debugw("Skipping duplicate record",
			"react_name", rec.ReactName)
		return nil
	}
	g.seen[rec.ReactName] = struct{}{}

	helper, feature, err := NormalizeStyle(rec.Style)
	if err != nil {
		return errors.Wrapf(err, "record %q", rec.ReactName)
	}

	v := Variant{
		Ident:   SanitizeName(rec.ReactName),
		Name:    rec.Name,
		Helper:  helper,
		Feature: feature,
		Doc:     rec.ContextualUsage,
	}

	// Lock-step: every variant entry gets exactly one dispatch clause, at the
	// same index on both sides.
	g.typeDefs.WriteString(g.emitter.VariantFragment(v))
	g.classesImpl.WriteString(g.emitter.DispatchFragment(v))
	g.count++

	return nil
}

// emit wraps the accumulated fragments into the two finished blocks
func (g *Generator) emit() *Result {
	return &Result{
		TypeDefinitions:     g.emitter.TypeHeader() + g.typeDefs.String() + g.emitter.TypeFooter(),
		ClassesImpl:         g.emitter.ImplHeader() + g.classesImpl.String() + g.emitter.ImplFooter(),
		Count:               g.count,
		SkippedPlaceholders: g.skippedPlaceholders,
		SkippedDuplicates:   g.skippedDuplicates,
	}
}
