package scan

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.DependencyScanner = (*ClangScanner)(nil)

// P1689Format is the clang-scan-deps output format flag.
const P1689Format = "-format=p1689"

// ClangScanner implements ports.DependencyScanner by running clang-scan-deps
// once per compile command.
type ClangScanner struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	limit     int
}

// NewClangScanner creates a scanner running at most runtime.NumCPU() scans at once.
func NewClangScanner(executor ports.Executor, telemetry ports.Telemetry) *ClangScanner {
	return &ClangScanner{
		executor:  executor,
		telemetry: telemetry,
		limit:     runtime.NumCPU(),
	}
}

// WithLimit returns a copy of s running at most n scans at once.
func (s *ClangScanner) WithLimit(n int) *ClangScanner {
	c := *s
	c.limit = max(n, 1)
	return &c
}

// Scan runs the scanner for every command in parallel and merges the results
// in command order.
func (s *ClangScanner) Scan(ctx context.Context, scanner string, cmds []domain.CompileCommand) (*domain.ScanDocument, error) {
	results := make([]*domain.ScanDocument, len(cmds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i := range cmds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := s.scanOne(gctx, scanner, &cmds[i])
			if err != nil {
				return err
			}
			results[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &domain.ScanDocument{Version: domain.P1689Version}
	merged.Merge(results...)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *ClangScanner) scanOne(ctx context.Context, scanner string, cmd *domain.CompileCommand) (doc *domain.ScanDocument, err error) {
	ctx, vertex := s.telemetry.Record(ctx, "scan "+filepath.Base(cmd.File))
	defer func() { vertex.Complete(err) }()

	args := make([]string, 0, len(cmd.Arguments)+3)
	args = append(args, scanner, P1689Format, "--")
	args = append(args, cmd.Arguments...)

	out, err := s.executor.Output(ctx, cmd.Directory, args)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrScannerFailed, err.Error()), "file", cmd.File)
	}

	doc, err = Decode(out)
	if err != nil {
		return nil, zerr.With(err, "file", cmd.File)
	}
	return doc, nil
}
