package users_dto

import (
	"github.com/google/uuid"
)

type RegisterRequestDTO struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type LoginRequestDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponseDTO struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username,omitempty"`
	Token    string    `json:"token"`
}
