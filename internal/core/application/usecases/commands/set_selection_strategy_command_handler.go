package commands

import (
	"context"
	"log/slog"
)

// SetSelectionStrategyCommandHandler swaps the process-wide default strategy.
type SetSelectionStrategyCommandHandler struct {
	strategies StrategyRegistry
	logger     *slog.Logger
}

// NewSetSelectionStrategyCommandHandler creates the handler.
func NewSetSelectionStrategyCommandHandler(strategies StrategyRegistry, logger *slog.Logger) SetSelectionStrategyCommandHandler {
	return SetSelectionStrategyCommandHandler{
		strategies: strategies,
		logger:     logger.With("component", "set_selection_strategy"),
	}
}

// Handle processes the command.
func (h SetSelectionStrategyCommandHandler) Handle(ctx context.Context, cmd SetSelectionStrategyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.strategies.SetDefault(cmd.Strategy()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Default selection strategy changed", "strategy", cmd.Strategy().Name())
	return nil
}
