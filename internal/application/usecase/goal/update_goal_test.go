// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
)

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	t.Run("updates title target and type", func(t *testing.T) {
		g := entity.NewGoal("Economizar R$ 500 este mês", decimal.NewFromInt(500), entity.GoalTypeSavings)
		repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
		uc := NewUpdateGoalUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID: g.ID,
			Title:  "Economizar R$ 1000 este mês",
			Target: decimal.NewFromInt(1000),
			Type:   entity.GoalTypeSavings,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Title != "Economizar R$ 1000 este mês" {
			t.Errorf("unexpected title %q", output.Goal.Title)
		}
		if !output.Goal.Target.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected target 1000, got %s", output.Goal.Target)
		}
	})

	t.Run("lowering the target clamps accumulated progress", func(t *testing.T) {
		g := entity.NewGoal("Concluir 10 tarefas esta semana", decimal.NewFromInt(10), entity.GoalTypeTasks)
		g.Current = decimal.NewFromInt(8)
		repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
		uc := NewUpdateGoalUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateGoalInput{
			GoalID: g.ID,
			Title:  g.Title,
			Target: decimal.NewFromInt(5),
			Type:   g.Type,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.Current.Equal(decimal.NewFromInt(5)) {
			t.Errorf("expected current clamped to 5, got %s", output.Goal.Current)
		}
		if !output.Goal.IsComplete() {
			t.Error("expected goal to read as complete after clamp")
		}
	})
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	t.Run("deletes an existing goal", func(t *testing.T) {
		g := entity.NewGoal("Ler 5 livros", decimal.NewFromInt(5), entity.GoalTypeLearning)
		repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
		uc := NewDeleteGoalUseCase(repo)

		if _, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: g.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.goals) != 0 {
			t.Errorf("expected no stored goals, got %d", len(repo.goals))
		}
	})

	t.Run("deleting an unknown goal is a no-op", func(t *testing.T) {
		g := entity.NewGoal("Ler 5 livros", decimal.NewFromInt(5), entity.GoalTypeLearning)
		repo := &fakeGoalRepo{goals: []*entity.Goal{g}}
		uc := NewDeleteGoalUseCase(repo)

		if _, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: entity.NewID()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.goals) != 1 {
			t.Errorf("expected the existing goal to remain, got %d", len(repo.goals))
		}
	})
}
