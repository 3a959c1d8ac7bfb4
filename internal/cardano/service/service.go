// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     service
// Description: Evaluation service combining catalog, history and logging
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
	mdwerrors "github.com/msto63/cardano/foundation/core/errors"
	"github.com/msto63/cardano/foundation/utils/cmplxx"
	"github.com/msto63/cardano/internal/cardano/catalog"
	"github.com/msto63/cardano/internal/cardano/store"
	coreGrpc "github.com/msto63/cardano/pkg/core/grpc"
	"github.com/msto63/cardano/pkg/core/logging"
)

// Request is one evaluation. Scalar is nil when the operation takes none.
type Request struct {
	Operation string
	Operands  []cmplxx.Complex
	Scalar    *float64
}

// Result is the outcome of a successful evaluation
type Result struct {
	Operation string
	Value     catalog.Value
	Rendered  string
	RequestID string
	Duration  time.Duration
}

// Config holds configuration for the evaluation service
type Config struct {
	// Pattern renders complex results; empty selects cmplxx.DefaultFormat
	Pattern string

	// HistoryPath enables the SQLite history when set
	HistoryPath string

	// Retention prunes older history entries on start; zero keeps everything
	Retention time.Duration

	// HistoryLimit is the page size used when a filter sets no limit
	HistoryLimit int

	// Store overrides HistoryPath
	Store store.Store

	// Catalog overrides catalog.Default()
	Catalog *catalog.Catalog

	Logger *logging.Logger
}

// DefaultConfig returns default configuration without history
func DefaultConfig() Config {
	return Config{
		Pattern:      cmplxx.DefaultFormat,
		HistoryLimit: 20,
	}
}

// Service evaluates catalog operations
type Service struct {
	catalog      *catalog.Catalog
	store        store.Store
	logger       *logging.Logger
	pattern      string
	historyLimit int
}

// NewService creates a new evaluation service
func NewService(cfg Config) (*Service, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New("cardano")
	}

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	pattern := cfg.Pattern
	if pattern == "" {
		pattern = cmplxx.DefaultFormat
	}

	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = 20
	}

	svc := &Service{
		catalog:      cat,
		store:        cfg.Store,
		logger:       logger,
		pattern:      pattern,
		historyLimit: limit,
	}

	if svc.store == nil && cfg.HistoryPath != "" {
		st, err := store.NewSQLiteStore(store.Config{Path: cfg.HistoryPath})
		if err != nil {
			return nil, mdwerrors.ModuleError(mdwerrors.ModuleService, "new", err, map[string]interface{}{
				"path": cfg.HistoryPath,
			})
		}
		svc.store = st
		logger.Debug("History store opened", "path", cfg.HistoryPath)
	}

	if svc.store != nil && cfg.Retention > 0 {
		deleted, err := svc.store.Prune(context.Background(), cfg.Retention)
		if err != nil {
			logger.Warn("Failed to prune history", "error", err)
		} else if deleted > 0 {
			logger.Info("History pruned", "deleted", deleted, "retention", cfg.Retention.String())
		}
	}

	return svc, nil
}

// Evaluate resolves and applies an operation. Successful and failed
// evaluations are recorded when history is enabled.
func (s *Service) Evaluate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	op, err := s.catalog.Lookup(req.Operation)
	if err != nil {
		s.logger.Debug("Unknown operation", "operation", req.Operation)
		return nil, err
	}
	if s.logger.TraceEnabled() {
		s.traceRequest(op.Name, req)
	}

	requestID := coreGrpc.GetRequestID(ctx)
	timer := s.logger.StartTimer("evaluate").WithField("operation_name", op.Name)
	if requestID != "" {
		timer.WithField("request_id", requestID)
	}

	value, err := op.Apply(catalog.Args{Operands: req.Operands, Scalar: req.Scalar})
	if err != nil {
		duration := timer.StopWithError(err)
		s.record(ctx, &store.Entry{
			RequestID:    requestID,
			Operation:    op.Name,
			Operands:     req.Operands,
			Scalar:       req.Scalar,
			ErrorCode:    string(mdwerror.GetCode(err)),
			ErrorMessage: err.Error(),
			Duration:     duration,
		})
		return nil, mdwerror.Wrap(err, "evaluate "+op.Name).WithDetail("operation_name", op.Name)
	}
	duration := timer.Stop()

	result := &Result{
		Operation: op.Name,
		Value:     value,
		Rendered:  value.Format(s.pattern),
		RequestID: requestID,
		Duration:  duration,
	}

	entry := &store.Entry{
		RequestID:  requestID,
		Operation:  op.Name,
		Operands:   req.Operands,
		Scalar:     req.Scalar,
		ResultKind: value.Kind.String(),
		Rendered:   result.Rendered,
		Duration:   duration,
	}
	switch value.Kind {
	case catalog.ResultComplex:
		z := value.Complex
		entry.Result = &z
	case catalog.ResultScalar:
		x := value.Scalar
		entry.ScalarResult = &x
	}
	s.record(ctx, entry)

	return result, nil
}

// record stores entry; history failures never fail an evaluation
func (s *Service) record(ctx context.Context, entry *store.Entry) {
	if s.store == nil {
		return
	}
	if err := s.store.Record(context.WithoutCancel(ctx), entry); err != nil {
		s.logger.WarnWithErr("Failed to record evaluation", err, "operation", entry.Operation)
	}
}

func (s *Service) traceRequest(name string, req Request) {
	operands := make([]string, len(req.Operands))
	for i, z := range req.Operands {
		operands[i] = z.Format(s.pattern)
	}
	kv := []interface{}{"operation", name, "operands", strings.Join(operands, ", ")}
	if req.Scalar != nil {
		kv = append(kv, "scalar", *req.Scalar)
	}
	s.logger.Trace("Evaluating", kv...)
}

func contextError(err error) *mdwerror.Error {
	code := mdwerrors.CodeOperationFailed
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = string(mdwerror.CodeTimeout)
	case errors.Is(err, context.Canceled):
		code = string(mdwerror.CodeCanceled)
	}
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleService).
		Operation("evaluate").
		Message("evaluation aborted").
		Cause(err).
		Code(code).
		Build()
}

// Lookup returns the catalog entry for name
func (s *Service) Lookup(name string) (*catalog.Operation, error) {
	return s.catalog.Lookup(name)
}

// Operations returns all catalog entries sorted by name
func (s *Service) Operations() []*catalog.Operation {
	return s.catalog.Operations()
}

// Pattern returns the pattern used to render complex results
func (s *Service) Pattern() string {
	return s.pattern
}

// HistoryEnabled reports whether evaluations are recorded
func (s *Service) HistoryEnabled() bool {
	return s.store != nil
}

// History returns recorded evaluations newest first
func (s *Service) History(ctx context.Context, filter store.Filter) ([]*store.Entry, error) {
	if s.store == nil {
		return nil, historyDisabled("history")
	}
	if filter.Limit == 0 {
		filter.Limit = s.historyLimit
	}
	return s.store.Query(ctx, filter)
}

// Stats contains aggregated history statistics
type Stats struct {
	Total       int64
	Failed      int64
	ByOperation map[string]int64
}

// Stats summarizes the recorded history
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	if s.store == nil {
		return nil, historyDisabled("stats")
	}

	total, err := s.store.Count(ctx, store.Filter{})
	if err != nil {
		return nil, err
	}
	failed, err := s.store.Count(ctx, store.Filter{ErrorsOnly: true})
	if err != nil {
		return nil, err
	}
	byOp, err := s.store.CountByOperation(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{Total: total, Failed: failed, ByOperation: byOp}, nil
}

// Prune deletes history entries older than olderThan
func (s *Service) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	if s.store == nil {
		return 0, historyDisabled("prune")
	}
	removed, err := s.store.Prune(ctx, olderThan)
	if err != nil {
		return 0, err
	}
	s.logger.Audit("History pruned", "older_than", olderThan.String(), "removed", removed)
	return removed, nil
}

// Ping checks the history store; it succeeds when history is disabled
func (s *Service) Ping(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Ping(ctx)
}

// Close releases the history store
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func historyDisabled(operation string) *mdwerror.Error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleService).
		Operation(operation).
		Message("history is disabled").
		Code(string(mdwerror.CodeServiceUnavailable)).
		Build()
}
