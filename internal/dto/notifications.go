package dto

import "time"

type NotificationResponseDTO struct {
	ID        string         `json:"id" example:"n-1"`
	Type      string         `json:"type" example:"balance_update"`
	Payload   map[string]any `json:"payload"`
	IsRead    bool           `json:"is_read" example:"false"`
	CreatedAt time.Time      `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
