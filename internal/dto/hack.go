package dto

import "time"

type StartHackRequestDTO struct {
	TargetType  string `json:"target_type" example:"PERSONA"`
	TargetID    string `json:"target_id" example:"c1f7d4a0"`
	ElementType string `json:"element_type" example:"wallet"`
}

type SessionResponseDTO struct {
	ID          string    `json:"id" example:"hs-1"`
	TargetType  string    `json:"target_type" example:"PERSONA"`
	TargetID    string    `json:"target_id" example:"c1f7d4a0"`
	ElementType string    `json:"element_type" example:"wallet"`
	Status      string    `json:"status" example:"ACTIVE"`
	ExpiresAt   time.Time `json:"expires_at" example:"2020-12-09T16:11:57+03:00"`
}

type CompleteHackRequestDTO struct {
	Success bool `json:"success" example:"true"`
}

type StealFundsResponseDTO struct {
	Amount int64 `json:"amount" example:"100"`
}

type FileResponseDTO struct {
	ID        string    `json:"id" example:"f-1"`
	Name      string    `json:"name" example:"SIN_451023.json"`
	Type      string    `json:"type" example:"application/json"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type BrickDeviceRequestDTO struct {
	DeviceID string `json:"device_id" example:"dev-1"`
}

type BrickDeviceResponseDTO struct {
	BrickUntil time.Time `json:"brick_until" example:"2020-12-09T16:14:57+03:00"`
}

type KnownTargetResponseDTO struct {
	TargetType string    `json:"target_type" example:"HOST"`
	TargetID   string    `json:"target_id" example:"h-22"`
	CreatedAt  time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}

type AddTargetRequestDTO struct {
	TargetType string `json:"target_type" example:"HOST"`
	TargetID   string `json:"target_id" example:"h-22"`
}

type CounterHackRequestDTO struct {
	Success bool `json:"success" example:"true"`
}

type HostResponseDTO struct {
	ID   string `json:"id" example:"h-22"`
	Name string `json:"name" example:"Golden Dragon mainframe"`
}
