// Package task contains task-related use cases.
package task

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

const completedPoints = 20

func TestToggleTaskUseCase_Execute(t *testing.T) {
	t.Run("completing a task advances tasks goals and awards points", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		advancer := &fakeGoalAdvancer{}
		awarder := &fakeAwarder{}
		uc := NewToggleTaskUseCase(repo, advancer, awarder, completedPoints)

		output, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Task.Completed {
			t.Error("expected task to be completed")
		}
		if len(advancer.calls) != 1 {
			t.Fatalf("expected 1 goal advance, got %d", len(advancer.calls))
		}
		if advancer.calls[0].goalType != entity.GoalTypeTasks {
			t.Errorf("expected goal type %s, got %s", entity.GoalTypeTasks, advancer.calls[0].goalType)
		}
		if !advancer.calls[0].amount.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected advance amount 1, got %s", advancer.calls[0].amount)
		}
		if len(awarder.awards) != 1 || awarder.awards[0] != completedPoints {
			t.Errorf("expected a %d point award, got %v", completedPoints, awarder.awards)
		}
	})

	t.Run("unchecking a completed task reverses nothing", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		task.Completed = true
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		advancer := &fakeGoalAdvancer{}
		awarder := &fakeAwarder{}
		uc := NewToggleTaskUseCase(repo, advancer, awarder, completedPoints)

		output, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Task.Completed {
			t.Error("expected task to be pending again")
		}
		if len(advancer.calls) != 0 {
			t.Errorf("expected no goal advances, got %d", len(advancer.calls))
		}
		if len(awarder.awards) != 0 {
			t.Errorf("expected no awards, got %v", awarder.awards)
		}
	})

	t.Run("re-completing a toggled task rewards again", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		advancer := &fakeGoalAdvancer{}
		awarder := &fakeAwarder{}
		uc := NewToggleTaskUseCase(repo, advancer, awarder, completedPoints)

		for i := 0; i < 3; i++ {
			if _, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: task.ID}); err != nil {
				t.Fatalf("toggle %d: unexpected error: %v", i, err)
			}
		}

		// Complete, uncheck, complete: two completions, two rewards.
		if len(advancer.calls) != 2 {
			t.Errorf("expected 2 goal advances, got %d", len(advancer.calls))
		}
		if len(awarder.awards) != 2 {
			t.Errorf("expected 2 awards, got %d", len(awarder.awards))
		}
	})

	t.Run("unknown task returns not found", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		advancer := &fakeGoalAdvancer{}
		awarder := &fakeAwarder{}
		uc := NewToggleTaskUseCase(repo, advancer, awarder, completedPoints)

		_, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: uuid.New()})

		var taskErr *domainerror.TaskError
		if !errors.As(err, &taskErr) {
			t.Fatalf("expected TaskError, got %v", err)
		}
		if taskErr.Code != domainerror.ErrCodeTaskNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTaskNotFound, taskErr.Code)
		}
	})
}

func TestUpdateTaskUseCase_Execute(t *testing.T) {
	t.Run("updates the text only", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		task.Completed = true
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		uc := NewUpdateTaskUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateTaskInput{
			TaskID: task.ID,
			Text:   "Estudar Go a fundo",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Task.Text != "Estudar Go a fundo" {
			t.Errorf("unexpected text %q", output.Task.Text)
		}
		if !output.Task.Completed {
			t.Error("expected completion state to be preserved")
		}
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		uc := NewUpdateTaskUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateTaskInput{
			TaskID: task.ID,
			Text:   "   ",
		})

		var taskErr *domainerror.TaskError
		if !errors.As(err, &taskErr) {
			t.Fatalf("expected TaskError, got %v", err)
		}
		if taskErr.Code != domainerror.ErrCodeEmptyTaskText {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyTaskText, taskErr.Code)
		}
		if task.Text != "Estudar Go" {
			t.Errorf("expected text unchanged, got %q", task.Text)
		}
	})
}

func TestDeleteTaskUseCase_Execute(t *testing.T) {
	t.Run("deletes an existing task", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		uc := NewDeleteTaskUseCase(repo)

		if _, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: task.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.tasks) != 0 {
			t.Errorf("expected no stored tasks, got %d", len(repo.tasks))
		}
	})

	t.Run("deleting an unknown task is a no-op", func(t *testing.T) {
		task := entity.NewTask("Estudar Go")
		repo := &fakeTaskRepo{tasks: []*entity.Task{task}}
		uc := NewDeleteTaskUseCase(repo)

		if _, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: uuid.New()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.tasks) != 1 {
			t.Errorf("expected the existing task to remain, got %d", len(repo.tasks))
		}
	})
}
