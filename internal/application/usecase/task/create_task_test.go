// Package task contains task-related use cases.
package task

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/lifequest/backend/internal/domain/error"
)

const createdPoints = 10

func TestCreateTaskUseCase_Execute(t *testing.T) {
	t.Run("creates task and awards points", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		awarder := &fakeAwarder{}
		uc := NewCreateTaskUseCase(repo, awarder, createdPoints)

		output, err := uc.Execute(context.Background(), CreateTaskInput{Text: "Estudar Go"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Task.Text != "Estudar Go" {
			t.Errorf("unexpected text %q", output.Task.Text)
		}
		if output.Task.Completed {
			t.Error("expected new task to be pending")
		}
		if len(repo.tasks) != 1 {
			t.Fatalf("expected 1 stored task, got %d", len(repo.tasks))
		}
		if len(awarder.awards) != 1 || awarder.awards[0] != createdPoints {
			t.Errorf("expected a %d point award, got %v", createdPoints, awarder.awards)
		}
	})

	t.Run("trims the text", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		awarder := &fakeAwarder{}
		uc := NewCreateTaskUseCase(repo, awarder, createdPoints)

		output, err := uc.Execute(context.Background(), CreateTaskInput{Text: "  Estudar Go  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Task.Text != "Estudar Go" {
			t.Errorf("expected trimmed text, got %q", output.Task.Text)
		}
	})

	t.Run("blank text is rejected without side effects", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		awarder := &fakeAwarder{}
		uc := NewCreateTaskUseCase(repo, awarder, createdPoints)

		_, err := uc.Execute(context.Background(), CreateTaskInput{Text: "   "})

		var taskErr *domainerror.TaskError
		if !errors.As(err, &taskErr) {
			t.Fatalf("expected TaskError, got %v", err)
		}
		if taskErr.Code != domainerror.ErrCodeEmptyTaskText {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyTaskText, taskErr.Code)
		}
		if len(repo.tasks) != 0 {
			t.Errorf("expected no stored tasks, got %d", len(repo.tasks))
		}
		if len(awarder.awards) != 0 {
			t.Errorf("expected no awards, got %v", awarder.awards)
		}
	})
}
