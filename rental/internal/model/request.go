package model

type OTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone" validate:"required,min=10,max=15"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FullName     string `json:"fullName" validate:"omitempty,min=2"`
	AadharNumber string `json:"aadharNumber" validate:"omitempty"`
	PanNumber    string `json:"panNumber" validate:"omitempty"`
}

type QuoteRequest struct {
	CarID       int    `json:"carId" validate:"required,gt=0"`
	PickupDate  Date   `json:"pickupDate" validate:"required"`
	DropoffDate Date   `json:"dropoffDate" validate:"required"`
	PromoCode   string `json:"promoCode"`
}

type CreateOrderRequest struct {
	CarID       int    `json:"carId" validate:"required,gt=0"`
	PickupDate  Date   `json:"pickupDate" validate:"required"`
	DropoffDate Date   `json:"dropoffDate" validate:"required"`
	PromoCode   string `json:"promoCode"`
}

type OrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type BookingDetails struct {
	CarID           int    `json:"carId" validate:"required,gt=0"`
	PickupLocation  string `json:"pickupLocation" validate:"required"`
	DropoffLocation string `json:"dropoffLocation" validate:"required"`
	PickupDate      Date   `json:"pickupDate" validate:"required"`
	DropoffDate     Date   `json:"dropoffDate" validate:"required"`
	PickupTime      string `json:"pickupTime" validate:"required"`
	PromoCode       string `json:"promoCode"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string         `json:"razorpayOrderId" validate:"required"`
	GatewayPaymentID string         `json:"razorpayPaymentId" validate:"required"`
	GatewaySignature string         `json:"razorpaySignature" validate:"required"`
	BookingDetails   BookingDetails `json:"bookingDetails" validate:"required"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,min=10"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Message string `json:"message" validate:"required,min=5"`
}

type CarRequest struct {
	Name          string    `json:"name" validate:"required"`
	Type          string    `json:"type" validate:"required"`
	ImageURLs     ImageURLs `json:"imageUrls"`
	FuelCapacity  int       `json:"fuelCapacity" validate:"gte=0"`
	Transmission  string    `json:"transmission" validate:"required"`
	Seats         int       `json:"seats" validate:"required,gt=0"`
	PricePerDay   int64     `json:"pricePerDay" validate:"required,gt=0"`
	OriginalPrice int64     `json:"originalPrice" validate:"omitempty,gte=0"`
	LicensePlate  string    `json:"licensePlate" validate:"required"`
	IsAvailable   bool      `json:"isAvailable"`
	Description   string    `json:"description"`
}

type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required,oneof=PENDING CONFIRMED ONGOING COMPLETED CANCELLED"`
}

type UpdateVerificationRequest struct {
	DocumentsVerified bool `json:"documentsVerified"`
}

type GalleryImageRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,url"`
}

// CarFilter narrows the public catalog listing at the data layer.
type CarFilter struct {
	Type     string
	Seats    int
	MaxPrice int64
}
