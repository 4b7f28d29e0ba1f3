package ports

import (
	"context"

	"github.com/bnema/gymctl/internal/domain"
)

type LoginResult struct {
	User  domain.UserIdentity
	Token string
}

// Backend is the typed HTTP contract of the activities API.
type Backend interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, name, email, password string) (domain.UserIdentity, error)

	ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id domain.ActivityID) (domain.Activity, error)
	CreateActivity(ctx context.Context, input domain.ActivityInput) (domain.Activity, error)
	UpdateActivity(ctx context.Context, id domain.ActivityID, input domain.ActivityInput) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id domain.ActivityID) error

	Enroll(ctx context.Context, id domain.ActivityID) error
	Unenroll(ctx context.Context, id domain.ActivityID) error
	MyActivities(ctx context.Context) ([]domain.MemberActivity, error)
}
