// Package persistence implements repository interfaces for the session store.
package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifequest/backend/internal/domain/entity"
	"github.com/lifequest/backend/internal/integration/persistence/model"
)

// Seed initializes the session store with the default profile and the
// starter goals. It is idempotent: an already-seeded store is left alone.
func Seed(ctx context.Context, db *gorm.DB, profileName string) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.ProgressModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	progress := entity.NewProgress(profileName)
	if err := db.WithContext(ctx).Create(model.ProgressFromEntity(progress)).Error; err != nil {
		return fmt.Errorf("failed to seed progress: %w", err)
	}

	starters := []*entity.Goal{
		entity.NewGoal("Concluir 10 tarefas esta semana", decimal.NewFromInt(10), entity.GoalTypeTasks),
		entity.NewGoal("Economizar R$ 500 este mês", decimal.NewFromInt(500), entity.GoalTypeSavings),
		entity.NewGoal("Ir à academia 12 vezes", decimal.NewFromInt(12), entity.GoalTypeHealth),
	}
	for _, g := range starters {
		if err := db.WithContext(ctx).Create(model.GoalFromEntity(g)).Error; err != nil {
			return fmt.Errorf("failed to seed goal %q: %w", g.Title, err)
		}
	}

	slog.Info("Session store seeded", "profile", profileName, "starter_goals", len(starters))
	return nil
}
