// File: internal/firebase/service.go
package firebase

import (
	"context"
	"fmt"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"music_catalog_backend/internal/config"
	"music_catalog_backend/internal/shared"
)

// Service wraps the Firebase Admin SDK. It is the single point of contact
// with the auth provider: token verification for the access guard and
// identity creation/deletion for registration and admin artist management.
type Service struct {
	authClient *auth.Client
	logger     *zap.Logger
}

var (
	_ shared.TokenVerifier = (*Service)(nil)
	_ shared.IdentityAdmin = (*Service)(nil)
)

// NewService initializes the Firebase Admin SDK from the configured
// service account key.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var app *firebase.App
	var err error

	if cfg.FirebaseProjectID != "" {
		conf := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err = firebase.NewApp(context.Background(), conf, opt)
	} else {
		// Let the SDK infer the project from the credentials.
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}

	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &Service{
		authClient: authClient,
		logger:     logger.Named("FirebaseService"),
	}, nil
}

// VerifyIDToken verifies a Firebase ID token and maps it onto a shared.Identity.
func (s *Service) VerifyIDToken(ctx context.Context, idToken string) (*shared.Identity, error) {
	if idToken == "" {
		return nil, fmt.Errorf("ID token must not be empty")
	}

	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn("Firebase ID token verification failed", zap.Error(err))
		return nil, fmt.Errorf("failed to verify Firebase ID token: %w", err)
	}

	identity := &shared.Identity{
		UID:            token.UID,
		SignInProvider: token.Firebase.SignInProvider,
	}
	if email, ok := token.Claims["email"].(string); ok && email != "" {
		identity.Email = &email
	}

	s.logger.Debug("Firebase ID token verified successfully", zap.String("uid", token.UID))
	return identity, nil
}

// CreateIdentity creates a new email/password identity at the auth provider.
// This operates purely through the Admin SDK; no existing user session is
// consulted or altered.
func (s *Service) CreateIdentity(ctx context.Context, email, password string) (*shared.Identity, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)

	record, err := s.authClient.CreateUser(ctx, params)
	if err != nil {
		s.logger.Warn("Failed to create identity", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	s.logger.Info("Identity created", zap.String("uid", record.UID))
	identity := &shared.Identity{UID: record.UID}
	if record.Email != "" {
		e := record.Email
		identity.Email = &e
	}
	return identity, nil
}

// DeleteIdentity removes an identity at the auth provider. Used both for
// admin artist deletion and as compensation when a profile write fails
// after the identity was already created.
func (s *Service) DeleteIdentity(ctx context.Context, uid string) error {
	if err := s.authClient.DeleteUser(ctx, uid); err != nil {
		s.logger.Error("Failed to delete identity", zap.String("uid", uid), zap.Error(err))
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	s.logger.Info("Identity deleted", zap.String("uid", uid))
	return nil
}

// RevokeRefreshTokens revokes all refresh tokens for a given identity.
func (s *Service) RevokeRefreshTokens(ctx context.Context, uid string) error {
	if err := s.authClient.RevokeRefreshTokens(ctx, uid); err != nil {
		s.logger.Error("Failed to revoke refresh tokens", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	s.logger.Info("Successfully revoked refresh tokens for user", zap.String("uid", uid))
	return nil
}
