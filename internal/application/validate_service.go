package application

import (
	"fmt"
	"log/slog"

	"github.com/brandguard/brandguard/internal/domain"
)

// ValidateService evaluates single assets for the CLI, the HTTP API and the
// MCP server.
type ValidateService struct {
	evaluator Evaluator
	loader    domain.RequestLoader
	observer  domain.ValidationObserver
	logger    *slog.Logger
}

// NewValidateService creates a ValidateService. observer may be nil.
func NewValidateService(
	evaluator Evaluator,
	loader domain.RequestLoader,
	observer domain.ValidationObserver,
	logger *slog.Logger,
) *ValidateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValidateService{evaluator: evaluator, loader: loader, observer: observer, logger: logger}
}

// Validate evaluates one request. Contract violations (no category, no
// brand) are returned as errors.
func (s *ValidateService) Validate(req domain.ValidationRequest) (*domain.ValidationResult, error) {
	result, err := s.evaluator.Evaluate(req.Asset, req.Context)
	if err != nil {
		return nil, fmt.Errorf("evaluating asset: %w", err)
	}
	if s.observer != nil {
		s.observer.ObserveValidation(req.Asset.Category, result)
	}
	s.logger.Debug("asset evaluated",
		"category", req.Asset.Category,
		"valid", result.Valid,
		"violations", len(result.Violations),
		"warnings", len(result.Warnings))
	return result, nil
}

// ValidateFile loads a request document from path and evaluates it.
func (s *ValidateService) ValidateFile(path string) (*domain.ValidationResult, error) {
	req, err := s.loader.LoadRequest(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s.Validate(*req)
}
