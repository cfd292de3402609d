package anime

import (
	"context"
	"log/slog"

	"github.com/taibuivan/anidex/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListAnimes returns every anime in storage order, never nil.
func (service *Service) ListAnimes(context context.Context) ([]*Anime, error) {
	animes, err := service.repo.ListAnimes(context)
	if err != nil {
		return nil, err
	}
	if animes == nil {
		animes = []*Anime{}
	}
	return animes, nil
}

func (service *Service) GetAnime(context context.Context, id int) (*Anime, error) {
	return service.repo.GetAnime(context, id)
}

func (service *Service) CreateAnime(context context.Context, input Input) (*Anime, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	anime, err := service.repo.CreateAnime(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("anime_created", slog.Int("anime_id", anime.ID), slog.String("name", anime.Name))
	return anime, nil
}

func (service *Service) UpdateAnime(context context.Context, id int, input Input) (*Anime, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	anime, err := service.repo.UpdateAnime(context, id, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("anime_updated", slog.Int("anime_id", anime.ID))
	return anime, nil
}

// DeleteAnime returns the record as it was before removal.
func (service *Service) DeleteAnime(context context.Context, id int) (*Anime, error) {
	anime, err := service.repo.DeleteAnime(context, id)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("anime_deleted", slog.Int("anime_id", id))
	return anime, nil
}

func validateInput(input Input) error {
	validator := &validate.Validator{}
	return validator.Struct(input).Err()
}
