package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/simpleproject-dev/finance-app/internal/model"
	"github.com/simpleproject-dev/finance-app/internal/repository"
)

// ErrNoUser is the sentinel every authenticated call short-circuits with when
// no session is present.
var ErrNoUser = errors.New("no user")

// Service gates access through the hosted identity provider. Sign-up,
// sign-in, sign-out and session lookup are fully delegated: no token refresh,
// MFA or revocation logic lives here.
type Service struct {
	client gotrue.Client
}

// NewService wraps the provider client. A nil client puts the service in
// degraded mode where every call fails with the not-configured error.
func NewService(client gotrue.Client) *Service {
	return &Service{client: client}
}

// SignUp registers an email/password account. The username travels as user
// metadata; the provider persists it.
func (s *Service) SignUp(ctx context.Context, email, password, username string) (*model.User, error) {
	if s.client == nil {
		return nil, repository.ErrNotConfigured
	}

	req := types.SignupRequest{
		Email:    email,
		Password: password,
	}
	if username != "" {
		req.Data = map[string]interface{}{"username": username}
	}

	resp, err := s.client.Signup(req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	return &model.User{
		ID:       resp.ID.String(),
		Email:    resp.Email,
		Username: username,
	}, nil
}

// SignIn exchanges email/password credentials for a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	if s.client == nil {
		return nil, repository.ErrNotConfigured
	}

	resp, err := s.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	return &model.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		User:         userFrom(resp.User),
	}, nil
}

// SignOut revokes the session behind the access token.
func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	if s.client == nil {
		return repository.ErrNotConfigured
	}
	if err := s.client.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

// CurrentUser resolves an access token to its user through the provider,
// the same per-call lookup the web client performed.
func (s *Service) CurrentUser(ctx context.Context, accessToken string) (*model.User, error) {
	if s.client == nil {
		return nil, repository.ErrNotConfigured
	}
	if accessToken == "" {
		return nil, ErrNoUser
	}

	resp, err := s.client.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, ErrNoUser
	}

	user := userFrom(resp.User)
	return &user, nil
}

func userFrom(u types.User) model.User {
	user := model.User{
		ID:    u.ID.String(),
		Email: u.Email,
	}
	if name, ok := u.UserMetadata["username"].(string); ok {
		user.Username = name
	}
	return user
}
