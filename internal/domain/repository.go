package domain

import "context"

// CardAPI is the remote card collection. The token travels in the context
// (see apiclient.WithToken) so one client can serve every visitor.
type CardAPI interface {
	ListCards(ctx context.Context) ([]Card, error)
	GetCard(ctx context.Context, id string) (*Card, error)
	MyCards(ctx context.Context) ([]Card, error)
	CreateCard(ctx context.Context, in CardInput) (*Card, error)
	UpdateCard(ctx context.Context, id string, in CardInput) (*Card, error)
	ToggleLike(ctx context.Context, id string) (*Card, error)
	DeleteCard(ctx context.Context, id string, bizNumber int64) error
}

// UserAPI is the remote user collection.
type UserAPI interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, in RegisterInput) (string, error)
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, in ProfileInput) (*User, error)
	ToggleBusiness(ctx context.Context, id string) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}
