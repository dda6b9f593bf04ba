// Package task contains task-related use cases.
package task

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifequest/backend/internal/domain/entity"
	domainerror "github.com/lifequest/backend/internal/domain/error"
)

// fakeTaskRepo is an in-memory TaskRepository for tests. Tasks are kept in
// insertion order.
type fakeTaskRepo struct {
	tasks []*entity.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTaskNotFound
}

func (f *fakeTaskRepo) FindAll(_ context.Context) ([]*entity.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	for i, existing := range f.tasks {
		if existing.ID == t.ID {
			f.tasks[i] = t
			return nil
		}
	}
	return domainerror.ErrTaskNotFound
}

func (f *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
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

// advanceCall records one GoalAdvancer invocation.
type advanceCall struct {
	goalType entity.GoalType
	amount   decimal.Decimal
}

// fakeGoalAdvancer records fan-out calls for assertions.
type fakeGoalAdvancer struct {
	calls []advanceCall
}

func (f *fakeGoalAdvancer) AdvanceByType(_ context.Context, goalType entity.GoalType, amount decimal.Decimal) error {
	f.calls = append(f.calls, advanceCall{goalType: goalType, amount: amount})
	return nil
}
