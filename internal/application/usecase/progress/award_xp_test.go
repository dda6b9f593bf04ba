// Package progress contains user progression use cases.
package progress

import (
	"context"
	"testing"

	"github.com/lifequest/backend/internal/domain/entity"
)

func TestAwardXPUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		startLevel   int
		startXP      int
		points       int
		wantLevel    int
		wantXP       int
		wantLevelUps []int
	}{
		{
			name:       "award below threshold keeps level",
			startLevel: 1,
			startXP:    30,
			points:     50,
			wantLevel:  1,
			wantXP:     80,
		},
		{
			name:         "award crossing threshold levels up",
			startLevel:   1,
			startXP:      95,
			points:       20,
			wantLevel:    2,
			wantXP:       15,
			wantLevelUps: []int{2},
		},
		{
			name:         "large award spans multiple levels",
			startLevel:   2,
			startXP:      15,
			points:       250,
			wantLevel:    3,
			wantXP:       65,
			wantLevelUps: []int{3},
		},
		{
			name:         "award landing exactly on threshold levels up to zero",
			startLevel:   1,
			startXP:      0,
			points:       100,
			wantLevel:    2,
			wantXP:       0,
			wantLevelUps: []int{2},
		},
		{
			name:         "huge award triggers consecutive level ups",
			startLevel:   1,
			startXP:      0,
			points:       350,
			wantLevel:    3,
			wantXP:       50,
			wantLevelUps: []int{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProgressRepo{progress: &entity.Progress{
				Name:  "Pedro Lucas",
				Level: tt.startLevel,
				XP:    tt.startXP,
			}}
			notifier := &fakeNotifier{}
			uc := NewAwardXPUseCase(repo, notifier)

			output, err := uc.Execute(context.Background(), AwardXPInput{Points: tt.points})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if output.Progress.Level != tt.wantLevel {
				t.Errorf("expected level %d, got %d", tt.wantLevel, output.Progress.Level)
			}
			if output.Progress.XP != tt.wantXP {
				t.Errorf("expected xp %d, got %d", tt.wantXP, output.Progress.XP)
			}

			if len(notifier.levelUps) != len(tt.wantLevelUps) {
				t.Fatalf("expected %d level up events, got %d", len(tt.wantLevelUps), len(notifier.levelUps))
			}
			for i, want := range tt.wantLevelUps {
				if notifier.levelUps[i] != want {
					t.Errorf("level up event %d: expected level %d, got %d", i, want, notifier.levelUps[i])
				}
			}

			// The stored progress must match the returned one.
			if repo.progress.Level != tt.wantLevel || repo.progress.XP != tt.wantXP {
				t.Errorf("stored progress mismatch: level %d xp %d", repo.progress.Level, repo.progress.XP)
			}
		})
	}
}

func TestAwardXPUseCase_Award(t *testing.T) {
	repo := &fakeProgressRepo{progress: entity.NewProgress("Pedro Lucas")}
	notifier := &fakeNotifier{}
	uc := NewAwardXPUseCase(repo, notifier)

	if err := uc.Award(context.Background(), 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.progress.XP != 20 {
		t.Errorf("expected xp 20, got %d", repo.progress.XP)
	}
	if repo.progress.Level != 1 {
		t.Errorf("expected level 1, got %d", repo.progress.Level)
	}
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	repo := &fakeProgressRepo{progress: &entity.Progress{
		Name:  "Pedro Lucas",
		Level: 3,
		XP:    42,
	}}
	uc := NewGetProfileUseCase(repo)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Progress.Name != "Pedro Lucas" {
		t.Errorf("expected name %q, got %q", "Pedro Lucas", output.Progress.Name)
	}
	if output.NextLevelXP != 300 {
		t.Errorf("expected next level xp 300, got %d", output.NextLevelXP)
	}
}
