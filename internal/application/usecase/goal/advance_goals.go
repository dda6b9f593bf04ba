// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/domain/entity"
)

// AdvanceGoalsInput represents a typed progress event: a domain produced
// Amount worth of progress for every goal of the given type.
type AdvanceGoalsInput struct {
	Type   entity.GoalType
	Amount decimal.Decimal
}

// AdvanceGoalsOutput represents the output of advancing goals.
type AdvanceGoalsOutput struct {
	Completed []*entity.Goal
}

// AdvanceGoalsUseCase advances every goal matching an event's type.
// Goals of other types are left untouched. A goal crossing its target from
// below emits a completion notification and awards the completion bonus,
// exactly once per crossing.
type AdvanceGoalsUseCase struct {
	goalRepo    adapter.GoalRepository
	awarder     adapter.ExperienceAwarder
	notifier    adapter.Notifier
	bonusPoints int
}

// NewAdvanceGoalsUseCase creates a new AdvanceGoalsUseCase instance.
func NewAdvanceGoalsUseCase(
	goalRepo adapter.GoalRepository,
	awarder adapter.ExperienceAwarder,
	notifier adapter.Notifier,
	bonusPoints int,
) *AdvanceGoalsUseCase {
	return &AdvanceGoalsUseCase{
		goalRepo:    goalRepo,
		awarder:     awarder,
		notifier:    notifier,
		bonusPoints: bonusPoints,
	}
}

// Execute performs the fan-out.
func (uc *AdvanceGoalsUseCase) Execute(ctx context.Context, input AdvanceGoalsInput) (*AdvanceGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByType(ctx, input.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to find goals by type: %w", err)
	}

	output := &AdvanceGoalsOutput{}
	for _, g := range goals {
		justCompleted := g.Advance(input.Amount)

		if err := uc.goalRepo.Update(ctx, g); err != nil {
			return nil, fmt.Errorf("failed to update goal: %w", err)
		}

		if justCompleted {
			output.Completed = append(output.Completed, g)
			uc.notifier.GoalCompleted(ctx, g.Title)
			slog.Info("goal completed", "goal_id", g.ID, "title", g.Title)

			if err := uc.awarder.Award(ctx, uc.bonusPoints); err != nil {
				return nil, fmt.Errorf("failed to award completion bonus: %w", err)
			}
		}
	}

	return output, nil
}

// AdvanceByType implements adapter.GoalAdvancer.
func (uc *AdvanceGoalsUseCase) AdvanceByType(ctx context.Context, goalType entity.GoalType, amount decimal.Decimal) error {
	_, err := uc.Execute(ctx, AdvanceGoalsInput{Type: goalType, Amount: amount})
	return err
}
