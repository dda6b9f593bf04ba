// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/lifequest/backend/internal/domain/entity"

// ProfileResponse represents the user progression snapshot.
type ProfileResponse struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	XP          int    `json:"xp"`
	NextLevelXP int    `json:"next_level_xp"`
}

// ToProfileResponse converts a domain Progress entity to a ProfileResponse DTO.
func ToProfileResponse(p *entity.Progress) ProfileResponse {
	return ProfileResponse{
		Name:        p.Name,
		Level:       p.Level,
		XP:          p.XP,
		NextLevelXP: p.NextLevelXP(),
	}
}
