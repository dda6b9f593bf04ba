// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/lifequest/backend/config"
	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/application/usecase/goal"
	"github.com/lifequest/backend/internal/application/usecase/progress"
	"github.com/lifequest/backend/internal/application/usecase/task"
	"github.com/lifequest/backend/internal/application/usecase/transaction"
	"github.com/lifequest/backend/internal/infra/server/router"
	"github.com/lifequest/backend/internal/integration/entrypoint/controller"
	"github.com/lifequest/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The notifier and feed are injected so the caller can pick the Redis backed
// implementation or the in-process fallback.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	notifier adapter.Notifier,
	feed adapter.NotificationFeed,
) *Injector {
	// Create repositories
	taskRepo := persistence.NewTaskRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	progressRepo := persistence.NewProgressRepository(db)

	// Create progression use cases. AwardXPUseCase doubles as the
	// ExperienceAwarder every other area signals into.
	awardXPUseCase := progress.NewAwardXPUseCase(progressRepo, notifier)
	getProfileUseCase := progress.NewGetProfileUseCase(progressRepo)

	// Create goal use cases. AdvanceGoalsUseCase doubles as the GoalAdvancer
	// that task and transaction use cases signal into.
	advanceGoalsUseCase := goal.NewAdvanceGoalsUseCase(goalRepo, awardXPUseCase, notifier, cfg.Rewards.GoalCompletedBonus)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, awardXPUseCase, cfg.Rewards.GoalCreated)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	incrementGoalUseCase := goal.NewIncrementGoalUseCase(goalRepo, awardXPUseCase, notifier, cfg.Rewards.GoalCompletedBonus)
	decrementGoalUseCase := goal.NewDecrementGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create task use cases
	listTasksUseCase := task.NewListTasksUseCase(taskRepo)
	createTaskUseCase := task.NewCreateTaskUseCase(taskRepo, awardXPUseCase, cfg.Rewards.TaskCreated)
	updateTaskUseCase := task.NewUpdateTaskUseCase(taskRepo)
	toggleTaskUseCase := task.NewToggleTaskUseCase(taskRepo, advanceGoalsUseCase, awardXPUseCase, cfg.Rewards.TaskCompleted)
	deleteTaskUseCase := task.NewDeleteTaskUseCase(taskRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, advanceGoalsUseCase, awardXPUseCase, cfg.Rewards.TransactionRecorded)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, feed.Backend())

	sessionController := controller.NewSessionController(getProfileUseCase)
	profileController := controller.NewProfileController(getProfileUseCase)

	taskController := controller.NewTaskController(
		listTasksUseCase,
		createTaskUseCase,
		updateTaskUseCase,
		toggleTaskUseCase,
		deleteTaskUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		incrementGoalUseCase,
		decrementGoalUseCase,
		deleteGoalUseCase,
	)

	notificationController := controller.NewNotificationController(feed)

	// Create router
	appRouter := router.NewRouter(
		healthController,
		sessionController,
		profileController,
		taskController,
		transactionController,
		goalController,
		notificationController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: appRouter,
	}
}
