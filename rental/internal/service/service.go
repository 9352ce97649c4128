package service

import (
	"context"

	"github.com/drivehub/rental-service/rental/config"
	"github.com/drivehub/rental-service/rental/internal/gateway"
	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/drivehub/rental-service/rental/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	gw   gateway.Client
	cfg  *config.Config
}

func NewService(repo repository.Repository, gw gateway.Client, cfg *config.Config, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}

func (s *Service) ListAvailableCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	return s.repo.ListAvailableCars(ctx, filter)
}

func (s *Service) GetCarDetails(ctx context.Context, id int) (model.CarDetails, error) {
	car, err := s.repo.GetCar(ctx, id)
	if err != nil {
		return model.CarDetails{}, err
	}
	reviews, err := s.repo.ListReviews(ctx, id)
	if err != nil {
		return model.CarDetails{}, err
	}
	avg, count, err := s.repo.RatingSummary(ctx, id)
	if err != nil {
		return model.CarDetails{}, err
	}
	return model.CarDetails{
		Car:         car,
		Reviews:     reviews,
		AvgRating:   avg,
		ReviewCount: count,
	}, nil
}

func (s *Service) CreateReview(ctx context.Context, userID, carID int, req model.CreateReviewRequest) (model.Review, error) {
	if _, err := s.repo.GetCar(ctx, carID); err != nil {
		return model.Review{}, err
	}
	return s.repo.CreateReview(ctx, userID, carID, req)
}

func (s *Service) CreateContactMessage(ctx context.Context, req model.ContactRequest) (model.ContactMessage, error) {
	return s.repo.CreateContactMessage(ctx, req)
}

func (s *Service) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.ListContactMessages(ctx)
}

func (s *Service) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	return s.repo.ListGalleryImages(ctx)
}

func (s *Service) CreateGalleryImage(ctx context.Context, req model.GalleryImageRequest) (model.GalleryImage, error) {
	return s.repo.CreateGalleryImage(ctx, req)
}

func (s *Service) DeleteGalleryImage(ctx context.Context, id int) error {
	return s.repo.DeleteGalleryImage(ctx, id)
}

func (s *Service) ListCars(ctx context.Context) ([]model.Car, error) {
	return s.repo.ListCars(ctx)
}

func (s *Service) CreateCar(ctx context.Context, req model.CarRequest) (model.Car, error) {
	return s.repo.CreateCar(ctx, req)
}

func (s *Service) UpdateCar(ctx context.Context, id int, req model.CarRequest) (model.Car, error) {
	return s.repo.UpdateCar(ctx, id, req)
}

func (s *Service) DeleteCar(ctx context.Context, id int) error {
	return s.repo.DeleteCar(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) SetDocumentsVerified(ctx context.Context, id int, verified bool) (model.User, error) {
	return s.repo.SetDocumentsVerified(ctx, id, verified)
}

func (s *Service) GetUser(ctx context.Context, id int) (model.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *Service) SetDocumentURL(ctx context.Context, id int, docType, url string) (model.User, error) {
	return s.repo.SetDocumentURL(ctx, id, docType, url)
}
