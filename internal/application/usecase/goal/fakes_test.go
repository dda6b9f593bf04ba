// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// fakeGoalRepo is an in-memory GoalRepository for tests. Goals are kept in
// insertion order.
type fakeGoalRepo struct {
	goals []*entity.Goal
}

func (f *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	f.goals = append(f.goals, g)
	return nil
}

func (f *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (f *fakeGoalRepo) FindAll(_ context.Context) ([]*entity.Goal, error) {
	return f.goals, nil
}

func (f *fakeGoalRepo) FindByType(_ context.Context, goalType entity.GoalType) ([]*entity.Goal, error) {
	var matched []*entity.Goal
	for _, g := range f.goals {
		if g.Type == goalType {
			matched = append(matched, g)
		}
	}
	return matched, nil
}

func (f *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	for i, existing := range f.goals {
		if existing.ID == g.ID {
			f.goals[i] = g
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

func (f *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, g := range f.goals {
		if g.ID == id {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeAwarder records awarded points for assertions.
type fakeAwarder struct {
	awards []int
}

func (f *fakeAwarder) Award(_ context.Context, points int) error {
	f.awards = append(f.awards, points)
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
