package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Platform roles. The closed set is enforced at profile update time.
const (
	RoleStudent = "student"
	RoleAlumni  = "alumni"
	RoleAdmin   = "admin"
)

type User struct {
	ID        string    `json:"id"` // Supabase UUID
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is the member-facing profile used across the platform and by the
// recommendation engine. Optional fields stay empty/nil when the member has
// not filled them in; the engine treats absence as "rule does not apply".
type Profile struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id" validate:"required"`
	FullName       string    `json:"full_name" validate:"required,min=2,max=100"`
	Role           string    `json:"role" validate:"required,oneof=student alumni admin"`
	Headline       string    `json:"headline" validate:"max=150"`
	Bio            string    `json:"bio" validate:"max=500"`
	GraduationYear *int      `json:"graduation_year,omitempty" validate:"omitempty,min=1950,max=2100"`
	Skills         []string  `json:"skills"`
	Interests      []string  `json:"interests"`
	Location       string    `json:"location" validate:"max=100"`
	Company        string    `json:"company" validate:"max=100"`
	IsMentor       bool      `json:"is_mentor"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	// FetchAllExcept returns every profile except the one owned by userID.
	FetchAllExcept(ctx context.Context, userID string) ([]Profile, error)
	Fetch(ctx context.Context, limit, offset int) ([]Profile, int64, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, profile *Profile) error
	ListDirectory(ctx context.Context, page, pageSize int) ([]Profile, int64, error)
}
