package handler

import (
	"context"

	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/drivehub/rental-service/rental/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RentalService interface {
	ListAvailableCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error)
	GetCarDetails(ctx context.Context, id int) (model.CarDetails, error)
	ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error)
	CreateContactMessage(ctx context.Context, req model.ContactRequest) (model.ContactMessage, error)
	CreateReview(ctx context.Context, userID, carID int, req model.CreateReviewRequest) (model.Review, error)

	RequestOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code string) (model.User, error)
	AdminLogin(username, password string) error

	GetUser(ctx context.Context, id int) (model.User, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (model.User, error)
	SetDocumentURL(ctx context.Context, id int, docType, url string) (model.User, error)

	QuoteBooking(ctx context.Context, req model.QuoteRequest) (model.Quote, error)
	CreateOrder(ctx context.Context, userID int, req model.CreateOrderRequest) (model.OrderResponse, error)
	VerifyPayment(ctx context.Context, userID int, req model.VerifyPaymentRequest) (model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error)

	ListCars(ctx context.Context) ([]model.Car, error)
	CreateCar(ctx context.Context, req model.CarRequest) (model.Car, error)
	UpdateCar(ctx context.Context, id int, req model.CarRequest) (model.Car, error)
	DeleteCar(ctx context.Context, id int) error
	ListBookings(ctx context.Context) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, to model.BookingStatus) (model.Booking, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	SetDocumentsVerified(ctx context.Context, id int, verified bool) (model.User, error)
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	CreateGalleryImage(ctx context.Context, req model.GalleryImageRequest) (model.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int) error
}

var _ RentalService = (*service.Service)(nil)
