package dto

import "time"

type DeviceResponseDTO struct {
	ID         string     `json:"id" example:"dev-1"`
	Code       string     `json:"code" example:"CMLK-4451"`
	Type       string     `json:"type" example:"COMMLINK"`
	Status     string     `json:"status" example:"ACTIVE"`
	BrickUntil *time.Time `json:"brick_until,omitempty" example:"2020-12-09T16:14:57+03:00"`
}

type BindDeviceRequestDTO struct {
	Code string `json:"code" example:"CMLK-4451"`
}
