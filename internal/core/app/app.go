// Package app wires the compile pipeline: resolve includes, split and join
// lines, pair key and command lines, then expand and assemble outputs.
package app

import (
	"context"
	"hotkeyc/internal/core/config"
	"hotkeyc/internal/core/errors"
	"hotkeyc/internal/engine/keysym"
	"hotkeyc/internal/engine/parser"
	"hotkeyc/internal/engine/resolver"
	"hotkeyc/internal/shared/observability"
	"hotkeyc/internal/shared/util"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Compiler struct {
	Config    *config.Config
	resolver  *resolver.Resolver
	assembler *parser.Assembler
}

func New(cfg *config.Config) (*Compiler, error) {
	return NewWithReader(cfg, resolver.OSReader{})
}

// NewWithReader builds a compiler that loads source files through reader.
func NewWithReader(cfg *config.Config, reader resolver.Reader) (*Compiler, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	symbols, err := keysym.WithAliases(cfg.Keysyms)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "invalid keysym aliases")
	}
	policy, err := resolver.NewPolicy(cfg.Imports.Allow, cfg.Imports.Deny)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "invalid import policy")
	}
	return &Compiler{
		Config:    cfg,
		resolver:  resolver.NewResolver(reader, policy),
		assembler: parser.NewAssembler(parser.NewGrammar(symbols)),
	}, nil
}

// Compile builds the binding table for root and everything it includes.
// The first error aborts the compile and no table is returned.
func (c *Compiler) Compile(ctx context.Context, root string) (*Table, error) {
	ctx, span := observability.Tracer.Start(ctx, "Compiler.Compile", trace.WithAttributes(
		attribute.String("root", root),
	))
	defer span.End()

	table, err := c.compile(ctx, root)
	if err != nil {
		observability.CompileErrorsTotal.WithLabelValues(errorCode(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return table, nil
}

func (c *Compiler) compile(ctx context.Context, root string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root = util.ExpandHome(strings.TrimSpace(root))
	if root == "" {
		return nil, errors.New(errors.CodeValidationError, "no root config file given")
	}

	start := time.Now()
	defer func() {
		observability.CompileDuration.Observe(time.Since(start).Seconds())
	}()

	id := uuid.NewString()
	logger := slog.With("compile_id", id)
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("compile_id", id))

	closure, err := c.resolver.Closure(root)
	if err != nil {
		return nil, err
	}
	observability.SourceUnitsTotal.Add(float64(len(closure.Units)))
	observability.IncludeEdges.Set(float64(closure.Graph.EdgeCount()))

	table := &Table{
		ID:    id,
		Root:  root,
		Units: closure.Paths(),
		graph: closure.Graph,
	}

	table.Cycles = closure.Graph.DetectCycles()
	if len(table.Cycles) > 0 {
		observability.IncludeCyclesTotal.Add(float64(len(table.Cycles)))
		if c.Config.Diagnostics.IncludeCycleWarnings() {
			for _, cycle := range table.Cycles {
				logger.Warn("include cycle", "files", strings.Join(cycle, " -> "))
			}
		}
	}

	for _, unit := range closure.Units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := c.compileUnit(logger, unit)
		if err != nil {
			return nil, err
		}
		table.Entries = append(table.Entries, entries...)
	}

	if c.Config.Diagnostics.Dedupe {
		var dropped int
		table.Entries, dropped = dedupe(table.Entries)
		if dropped > 0 {
			logger.Debug("dropped duplicate outputs", "count", dropped)
		}
	}

	for _, e := range table.Entries {
		observability.OutputsTotal.WithLabelValues(OutputKind(e.Output)).Inc()
	}

	logger.Info("compiled",
		"root", root,
		"units", len(table.Units),
		"outputs", len(table.Entries),
		"duration", time.Since(start),
	)
	return table, nil
}

func (c *Compiler) compileUnit(logger *slog.Logger, unit resolver.SourceUnit) ([]Entry, error) {
	logger = logger.With("path", unit.Path)
	logger.Debug("compiling source unit", "imports", len(unit.Imports))

	lines, discards := parser.JoinLines(parser.SplitLines(unit.Text))
	for _, d := range discards {
		observability.DroppedContinuationsTotal.Inc()
		if c.Config.Diagnostics.DroppedContinuationWarnings() {
			logger.Warn("continuation line dropped",
				"line", d.Dropped.Number,
				"pending_kind", d.Pending.Kind.String(),
				"dropped_kind", d.Dropped.Kind.String(),
			)
		}
	}

	pairs, orphans := parser.PairLines(lines, resolver.ImportKeyword)
	for _, o := range orphans {
		observability.OrphanLinesTotal.Inc()
		logger.Warn("line has no partner", "line", o.Number, "kind", o.Kind.String())
	}

	var entries []Entry
	for _, p := range pairs {
		outputs, err := c.assembler.AssembleLine(p.Key, p.Command, unit.Path)
		if err != nil {
			return nil, err
		}
		logger.Debug("assembled pair", "line", p.Key.Number, "outputs", len(outputs))
		for _, out := range outputs {
			entries = append(entries, Entry{Path: unit.Path, Line: p.Key.Number, Output: out})
		}
	}
	return entries, nil
}

func errorCode(err error) string {
	if code, ok := errors.CodeOf(err); ok {
		return string(code)
	}
	return string(errors.CodeInternal)
}
