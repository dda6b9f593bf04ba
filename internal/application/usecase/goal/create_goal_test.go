// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

const createdPoints = 25

func TestCreateGoalUseCase_Execute(t *testing.T) {
	t.Run("creates goal with zero progress and awards points", func(t *testing.T) {
		repo := &fakeGoalRepo{}
		awarder := &fakeAwarder{}
		uc := NewCreateGoalUseCase(repo, awarder, createdPoints)

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			Title:  "Ir à academia 12 vezes",
			Target: decimal.NewFromInt(12),
			Type:   entity.GoalTypeHealth,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Goal.Current.IsZero() {
			t.Errorf("expected zero progress, got %s", output.Goal.Current)
		}
		if output.Goal.IsComplete() {
			t.Error("expected new goal to be incomplete")
		}
		if len(repo.goals) != 1 {
			t.Fatalf("expected 1 stored goal, got %d", len(repo.goals))
		}
		if len(awarder.awards) != 1 || awarder.awards[0] != createdPoints {
			t.Errorf("expected a %d point award, got %v", createdPoints, awarder.awards)
		}
	})

	t.Run("trims the title", func(t *testing.T) {
		repo := &fakeGoalRepo{}
		awarder := &fakeAwarder{}
		uc := NewCreateGoalUseCase(repo, awarder, createdPoints)

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			Title:  "  Ler 5 livros  ",
			Target: decimal.NewFromInt(5),
			Type:   entity.GoalTypeLearning,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Goal.Title != "Ler 5 livros" {
			t.Errorf("expected trimmed title, got %q", output.Goal.Title)
		}
	})

	validationTests := []struct {
		name     string
		input    CreateGoalInput
		wantCode domainerror.GoalErrorCode
	}{
		{
			name: "empty title rejected",
			input: CreateGoalInput{
				Title:  "   ",
				Target: decimal.NewFromInt(10),
				Type:   entity.GoalTypeTasks,
			},
			wantCode: domainerror.ErrCodeEmptyGoalTitle,
		},
		{
			name: "zero target rejected",
			input: CreateGoalInput{
				Title:  "Meta",
				Target: decimal.Zero,
				Type:   entity.GoalTypeTasks,
			},
			wantCode: domainerror.ErrCodeInvalidGoalTarget,
		},
		{
			name: "negative target rejected",
			input: CreateGoalInput{
				Title:  "Meta",
				Target: decimal.NewFromInt(-5),
				Type:   entity.GoalTypeTasks,
			},
			wantCode: domainerror.ErrCodeInvalidGoalTarget,
		},
		{
			name: "unknown type rejected",
			input: CreateGoalInput{
				Title:  "Meta",
				Target: decimal.NewFromInt(10),
				Type:   entity.GoalType("fitness"),
			},
			wantCode: domainerror.ErrCodeInvalidGoalType,
		},
	}

	for _, tt := range validationTests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeGoalRepo{}
			awarder := &fakeAwarder{}
			uc := NewCreateGoalUseCase(repo, awarder, createdPoints)

			_, err := uc.Execute(context.Background(), tt.input)

			var goalErr *domainerror.GoalError
			if !errors.As(err, &goalErr) {
				t.Fatalf("expected GoalError, got %v", err)
			}
			if goalErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, goalErr.Code)
			}

			// Validation failures must not mutate anything.
			if len(repo.goals) != 0 {
				t.Errorf("expected no stored goals, got %d", len(repo.goals))
			}
			if len(awarder.awards) != 0 {
				t.Errorf("expected no awards, got %v", awarder.awards)
			}
		})
	}
}
