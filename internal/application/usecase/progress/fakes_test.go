// Package progress contains user progression use cases.
package progress

import (
	"context"
	"errors"

	"github.com/lifequest/backend/internal/domain/entity"
)

// fakeProgressRepo is an in-memory ProgressRepository for tests.
type fakeProgressRepo struct {
	progress *entity.Progress
	getErr   error
	saveErr  error
}

func (f *fakeProgressRepo) Get(_ context.Context) (*entity.Progress, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.progress == nil {
		return nil, errors.New("no progress stored")
	}
	return f.progress, nil
}

func (f *fakeProgressRepo) Save(_ context.Context, progress *entity.Progress) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.progress = progress
	return nil
}

// fakeNotifier records published events for assertions.
type fakeNotifier struct {
	levelUps       []int
	goalsCompleted []string
}

func (f *fakeNotifier) LevelUp(_ context.Context, newLevel int) {
	f.levelUps = append(f.levelUps, newLevel)
}

func (f *fakeNotifier) GoalCompleted(_ context.Context, goalTitle string) {
	f.goalsCompleted = append(f.goalsCompleted, goalTitle)
}
