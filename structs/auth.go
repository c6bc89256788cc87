package structs

import (
	"time"

	"github.com/google/uuid"
)

type AuthClaims struct {
	Sub   uuid.UUID
	Email string
	Role  string
	Iat   time.Time
	Exp   time.Time
	Jti   uuid.UUID
}

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

type RegisterRequest struct {
	Username   string `json:"username" validate:"required,min=3,max=30"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	FirstName  string `json:"first_name" validate:"required,max=30"`
	LastName   string `json:"last_name" validate:"required,max=30"`
	CellNumber string `json:"cell_number" validate:"required,max=20"`
	Address    string `json:"address" validate:"required,max=255"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}
