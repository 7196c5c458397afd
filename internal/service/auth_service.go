package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"sellapi/internal/auth"
	"sellapi/internal/errors"
	"sellapi/internal/image"
	"sellapi/internal/mailer"
	"sellapi/internal/model"
	"sellapi/internal/repository"
)

const (
	bcryptCost = 10

	resetTokenBytes = 20
	// resetTokenTTL is the window during which a reset token is honored.
	resetTokenTTL = 15 * time.Minute
)

// RegisterInput carries the registration fields. Avatar is the raw image
// payload forwarded to the asset host.
type RegisterInput struct {
	Name        string
	Email       string
	Gender      string
	Password    string
	ProductName string
	ProductCat  string
	Avatar      string
}

// AuthService handles the account credential lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*model.Sell, string, error)
	Login(ctx context.Context, email, password string) (*model.Sell, string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) (*model.Sell, string, error)
	UpdatePassword(ctx context.Context, sellID, oldPassword, newPassword string) (*model.Sell, string, error)
}

type authService struct {
	repo       repository.SellRepository
	jwtService *auth.JWTService
	uploader   image.Uploader
	mail       mailer.Mailer
	log        zerolog.Logger

	resetTemplateID string
	resetURLBase    string
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	repo repository.SellRepository,
	jwtService *auth.JWTService,
	uploader image.Uploader,
	mail mailer.Mailer,
	log zerolog.Logger,
	resetTemplateID, resetURLBase string,
) AuthService {
	return &authService{
		repo:            repo,
		jwtService:      jwtService,
		uploader:        uploader,
		mail:            mail,
		log:             log,
		resetTemplateID: resetTemplateID,
		resetURLBase:    resetURLBase,
	}
}

// Register uploads the avatar, creates the account with a hashed password and
// issues a token.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.Sell, string, error) {
	var avatar model.Avatar
	if input.Avatar != "" {
		upload, err := s.uploader.UploadAvatar(ctx, input.Avatar)
		if err != nil {
			s.log.Error().Err(err).Msg("avatar upload failed")
			return nil, "", errors.ErrImageUpload
		}
		avatar = model.Avatar{PublicID: upload.PublicID, URL: upload.URL}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	sell := &model.Sell{
		Name:        input.Name,
		Email:       input.Email,
		Gender:      input.Gender,
		Password:    string(hashed),
		ProductName: input.ProductName,
		ProductCat:  input.ProductCat,
		Avatar:      avatar,
		Role:        model.RoleUser,
	}

	if err := s.repo.Create(ctx, sell); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(sell.ID.Hex(), sell.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return sell, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.Sell, string, error) {
	sell, err := s.repo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(sell.Password), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(sell.ID.Hex(), sell.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return sell, token, nil
}

// ForgotPassword stores a hashed single-use reset token on the account and
// mails the raw token. If the mail cannot be delivered the token is cleared
// again so no undelivered reset stays active.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	sell, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	id := sell.ID.Hex()
	expire := time.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, id, hashResetToken(rawToken), expire); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/password/reset/%s", s.resetURLBase, rawToken)
	data := map[string]interface{}{"reset_url": resetURL}
	if err := s.mail.Send(ctx, sell.Email, s.resetTemplateID, data); err != nil {
		s.log.Error().Err(err).Str("email", sell.Email).Msg("reset mail dispatch failed")
		if clearErr := s.repo.ClearResetToken(ctx, id); clearErr != nil {
			s.log.Error().Err(clearErr).Str("sell_id", id).Msg("failed to clear reset token after mail failure")
		}
		return errors.ErrMailDelivery
	}
	return nil
}

// ResetPassword consumes a raw reset token: it matches only while the stored
// expiry is in the future, and clearing the fields on success makes the token
// single use.
func (s *authService) ResetPassword(ctx context.Context, rawToken, newPassword string) (*model.Sell, string, error) {
	sell, err := s.repo.FindByResetToken(ctx, hashResetToken(rawToken))
	if err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, sell.ID.Hex(), string(hashed)); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(sell.ID.Hex(), sell.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return sell, token, nil
}

// UpdatePassword verifies the old password before storing the new one.
func (s *authService) UpdatePassword(ctx context.Context, sellID, oldPassword, newPassword string) (*model.Sell, string, error) {
	sell, err := s.repo.FindByIDWithPassword(ctx, sellID)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(sell.Password), []byte(oldPassword)); err != nil {
		return nil, "", errors.ErrBadOldPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, sellID, string(hashed)); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(sell.ID.Hex(), sell.Role)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return sell, token, nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashResetToken(rawToken string) string {
	digest := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(digest[:])
}
