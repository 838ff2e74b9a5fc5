package domain

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type loggingSubnetService struct {
	logger *slog.Logger
	next   SubnetService
}

func NewLoggingSubnetService(logger *slog.Logger, next SubnetService) SubnetService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingSubnetService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingSubnetService) Resolve(ctx context.Context, input string) (Result, error) {
	id := uuid.NewString()

	result, err := s.next.Resolve(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "resolve failed", "invocation_id", id, "input", input, "err", err.Error())
		return Result{}, err
	}

	s.logger.DebugContext(ctx, "input resolved",
		"invocation_id", id,
		"input", input,
		"prefix_length", result.Subnet.PrefixLength,
		"mask", result.Subnet.Mask,
		"address_mode", result.Network != nil,
	)
	return result, nil
}
