package service

import (
	"context"

	"github.com/rs/zerolog"

	"sellapi/internal/errors"
	"sellapi/internal/image"
	"sellapi/internal/model"
	"sellapi/internal/repository"
)

// ProfileInput carries the self-service profile fields. Avatar is the raw
// image payload; empty means keep the current avatar.
type ProfileInput struct {
	Name   string
	Email  string
	Avatar string
}

// SellService handles account reads, profile updates and the admin CRUD layer.
type SellService interface {
	GetByID(ctx context.Context, id string) (*model.Sell, error)
	UpdateProfile(ctx context.Context, id string, input ProfileInput) error
	List(ctx context.Context) ([]model.Sell, error)
	AdminUpdate(ctx context.Context, id string, update model.AdminUpdate) error
	AdminDelete(ctx context.Context, id string) error
}

type sellService struct {
	repo     repository.SellRepository
	uploader image.Uploader
	log      zerolog.Logger
}

// NewSellService creates a new account service.
func NewSellService(repo repository.SellRepository, uploader image.Uploader, log zerolog.Logger) SellService {
	return &sellService{
		repo:     repo,
		uploader: uploader,
		log:      log,
	}
}

// GetByID returns the account in its public projection.
func (s *sellService) GetByID(ctx context.Context, id string) (*model.Sell, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile always updates name and email. When a new avatar payload is
// supplied the old hosted image is deleted before the new one is uploaded.
// The two steps are not transactional; a failure in between can leave the
// account briefly without a valid avatar reference.
func (s *sellService) UpdateProfile(ctx context.Context, id string, input ProfileInput) error {
	update := model.ProfileUpdate{
		Name:  input.Name,
		Email: input.Email,
	}

	if input.Avatar != "" {
		sell, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if sell.Avatar.PublicID != "" {
			if err := s.uploader.Destroy(ctx, sell.Avatar.PublicID); err != nil {
				s.log.Warn().Err(err).Str("public_id", sell.Avatar.PublicID).Msg("old avatar delete failed")
			}
		}

		upload, err := s.uploader.UploadAvatar(ctx, input.Avatar)
		if err != nil {
			s.log.Error().Err(err).Str("sell_id", id).Msg("avatar upload failed")
			return errors.ErrImageUpload
		}
		update.Avatar = &model.Avatar{PublicID: upload.PublicID, URL: upload.URL}
	}

	return s.repo.UpdateProfile(ctx, id, update)
}

// List returns all accounts.
func (s *sellService) List(ctx context.Context) ([]model.Sell, error) {
	return s.repo.List(ctx)
}

// AdminUpdate applies the admin update. An unknown id is a silent no-op, so
// the caller always sees success.
func (s *sellService) AdminUpdate(ctx context.Context, id string, update model.AdminUpdate) error {
	return s.repo.UpdateRole(ctx, id, update)
}

// AdminDelete removes an account and, best effort, its hosted avatar.
func (s *sellService) AdminDelete(ctx context.Context, id string) error {
	sell, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if sell.Avatar.PublicID != "" {
		if err := s.uploader.Destroy(ctx, sell.Avatar.PublicID); err != nil {
			s.log.Warn().Err(err).Str("public_id", sell.Avatar.PublicID).Msg("avatar cleanup failed")
		}
	}
	return nil
}
