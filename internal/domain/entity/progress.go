// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Progress represents the user's gamification state.
// Invariant: XP is always strictly below the current level's threshold;
// any excess is converted into level-ups before being stored.
type Progress struct {
	Name      string
	Level     int
	XP        int
	UpdatedAt time.Time
}

// NewProgress creates a fresh Progress at level 1 with no experience.
func NewProgress(name string) *Progress {
	return &Progress{
		Name:      name,
		Level:     1,
		XP:        0,
		UpdatedAt: time.Now().UTC(),
	}
}

// NextLevelXP returns the experience threshold for the current level.
func (p *Progress) NextLevelXP() int {
	return p.Level * 100
}
