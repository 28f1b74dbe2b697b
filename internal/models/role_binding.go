package models

import "time"

// RoleBinding maps one functional role to its chosen model. One row per
// role; rows are only ever overwritten, never auto-deleted.
type RoleBinding struct {
	RoleID    string    `gorm:"primarykey" json:"role_id"`
	ModelID   string    `gorm:"not null;index" json:"model_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RoleBinding) TableName() string {
	return "role_bindings"
}

// TournamentPick is membership of one model in the tournament pool.
type TournamentPick struct {
	ModelID   string    `gorm:"primarykey" json:"model_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (TournamentPick) TableName() string {
	return "tournament_picks"
}
