package service

import (
	"context"
	"log/slog"

	"github.com/nfrund/bcard/internal/auth"
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/pubsub"
)

// Users serves account operations and the admin sandbox.
type Users struct {
	api domain.UserAPI
	pub pubsub.Publisher
}

// NewUsers creates the user service.
func NewUsers(api domain.UserAPI, pub pubsub.Publisher) *Users {
	return &Users{api: api, pub: pub}
}

// Login exchanges credentials for a token.
func (s *Users) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	return s.api.Login(ctx, creds)
}

// Register creates an account and returns the token of the new user.
func (s *Users) Register(ctx context.Context, in domain.RegisterInput) (string, error) {
	return s.api.Register(ctx, in)
}

// Profile fetches the session user's own account.
func (s *Users) Profile(ctx context.Context, sess domain.Session) (*domain.User, error) {
	if !sess.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	return s.api.GetUser(ctx, sess.UserID())
}

// UpdateProfile saves the session user's profile.
func (s *Users) UpdateProfile(ctx context.Context, sess domain.Session, in domain.ProfileInput) (*domain.User, error) {
	if !sess.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.api.UpdateUser(ctx, sess.UserID(), in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, sess, pubsub.TopicUserUpdated, pubsub.UserEvent{UserID: user.ID, IsBusiness: user.IsBusiness})
	return user, nil
}

// DeleteAccount removes the session user's own account.
func (s *Users) DeleteAccount(ctx context.Context, sess domain.Session) error {
	if !sess.IsAuthenticated {
		return domain.ErrUnauthorized
	}
	if err := s.api.DeleteUser(ctx, sess.UserID()); err != nil {
		return err
	}
	s.publish(ctx, sess, pubsub.TopicUserDeleted, pubsub.UserEvent{UserID: sess.UserID()})
	return nil
}

// List returns every user. Admin only.
func (s *Users) List(ctx context.Context, sess domain.Session) ([]domain.User, error) {
	if !sess.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	if !auth.CanAdmin(sess) {
		return nil, domain.ErrForbidden
	}
	return s.api.ListUsers(ctx)
}

// ToggleBusiness flips a user's business flag. Admin accounts are refused.
func (s *Users) ToggleBusiness(ctx context.Context, sess domain.Session, id string) (*domain.User, error) {
	if err := s.checkTarget(ctx, sess, id); err != nil {
		return nil, err
	}
	user, err := s.api.ToggleBusiness(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, sess, pubsub.TopicUserBusinessToggled, pubsub.UserEvent{UserID: user.ID, IsBusiness: user.IsBusiness})
	return user, nil
}

// Delete removes a user from the sandbox. Admin accounts are refused.
func (s *Users) Delete(ctx context.Context, sess domain.Session, id string) error {
	if err := s.checkTarget(ctx, sess, id); err != nil {
		return err
	}
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, sess, pubsub.TopicUserDeleted, pubsub.UserEvent{UserID: id})
	return nil
}

func (s *Users) checkTarget(ctx context.Context, sess domain.Session, id string) error {
	if !sess.IsAuthenticated {
		return domain.ErrUnauthorized
	}
	if !auth.CanAdmin(sess) {
		return domain.ErrForbidden
	}
	target, err := s.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CanModifyUser(sess, *target) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *Users) publish(ctx context.Context, sess domain.Session, topic string, event pubsub.UserEvent) {
	if s.pub == nil {
		return
	}
	if err := pubsub.PublishEvent(ctx, s.pub, topic, sess.UserID(), event); err != nil {
		slog.WarnContext(ctx, "Failed to publish user event", "topic", topic, "user_id", event.UserID, "error", err)
	}
}
