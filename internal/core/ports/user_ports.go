package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/warriorcenter/cms-api/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (int64, error)
}

type SignupResult struct {
	User          *domain.User `json:"newUser"`
	EmailResponse string       `json:"emailResponse"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresIn int       `json:"expiresIn"`
	UserID    uuid.UUID `json:"userId"`
}

type PasswordUpdateResult struct {
	Updated       int64  `json:"n"`
	EmailResponse string `json:"emailResponse,omitempty"`
}

type UserService interface {
	Signup(ctx context.Context, email, password string) (*SignupResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (*PasswordUpdateResult, error)
	ChangePassword(ctx context.Context, identity Identity, newPassword string) (*PasswordUpdateResult, error)
}
