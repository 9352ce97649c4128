package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusOngoing   BookingStatus = "ONGOING"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

const (
	PaymentStatusSuccess = "SUCCESS"
	PaymentMethodGateway = "razorpay"
)

// Date is a calendar day carried as "2006-01-02" on the wire.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return errors.Wrap(err, "date must be YYYY-MM-DD")
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

// ImageURLs lives in a jsonb column.
type ImageURLs []string

func (u ImageURLs) Value() (driver.Value, error) {
	if u == nil {
		u = ImageURLs{}
	}
	return json.Marshal(u)
}

func (u *ImageURLs) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*u = nil
		return nil
	case []byte:
		return json.Unmarshal(v, u)
	case string:
		return json.Unmarshal([]byte(v), u)
	default:
		return errors.Errorf("unsupported image_urls type %T", src)
	}
}

type Car struct {
	ID            int            `json:"id" db:"id"`
	Name          string         `json:"name" db:"name"`
	Type          string         `json:"type" db:"type"`
	ImageURLs     ImageURLs      `json:"imageUrls" db:"image_urls"`
	FuelCapacity  int            `json:"fuelCapacity" db:"fuel_capacity"`
	Transmission  string         `json:"transmission" db:"transmission"`
	Seats         int            `json:"seats" db:"seats"`
	PricePerDay   int64          `json:"pricePerDay" db:"price_per_day"`
	OriginalPrice *int64         `json:"originalPrice,omitempty" db:"original_price"`
	LicensePlate  string         `json:"licensePlate" db:"license_plate"`
	IsAvailable   bool           `json:"isAvailable" db:"is_available"`
	Description   string         `json:"description" db:"description"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

type User struct {
	ID                 int            `json:"id" db:"id"`
	Phone              string         `json:"phone" db:"phone"`
	FullName           *string        `json:"fullName" db:"full_name"`
	AadharNumber       *string        `json:"aadharNumber" db:"aadhar_number"`
	PanNumber          *string        `json:"panNumber" db:"pan_number"`
	AadharURL          *string        `json:"aadharUrl" db:"aadhar_url"`
	PanURL             *string        `json:"panUrl" db:"pan_url"`
	DocumentsVerified  bool           `json:"documentsVerified" db:"documents_verified"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at"`
}

type Booking struct {
	ID               int           `json:"id" db:"id"`
	BookingUid       string        `json:"bookingUid" db:"booking_uid"`
	UserID           int           `json:"-" db:"user_id"`
	CarID            int           `json:"carId" db:"car_id"`
	CarName          string        `json:"carName" db:"car_name"`
	LicensePlate     string        `json:"licensePlate" db:"license_plate"`
	PickupLocation   string        `json:"pickupLocation" db:"pickup_location"`
	DropoffLocation  string        `json:"dropoffLocation" db:"dropoff_location"`
	PickupDate       time.Time     `json:"pickupDate" db:"pickup_date"`
	DropoffDate      time.Time     `json:"dropoffDate" db:"dropoff_date"`
	PickupTime       string        `json:"pickupTime" db:"pickup_time"`
	RentalDays       int           `json:"rentalDays" db:"rental_days"`
	PricePerDay      int64         `json:"pricePerDay" db:"price_per_day"`
	Subtotal         int64         `json:"subtotal" db:"subtotal"`
	Discount         int64         `json:"discount" db:"discount"`
	Tax              int64         `json:"tax" db:"tax"`
	TotalAmount      int64         `json:"totalAmount" db:"total_amount"`
	GatewayOrderID   string        `json:"gatewayOrderId" db:"gateway_order_id"`
	GatewayPaymentID string        `json:"gatewayPaymentId" db:"gateway_payment_id"`
	PaymentStatus    string        `json:"paymentStatus" db:"payment_status"`
	PaymentMethod    string        `json:"paymentMethod" db:"payment_method"`
	Status           BookingStatus `json:"status" db:"status"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
}

type Review struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	CarID     int       `json:"carId" db:"car_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ContactMessage struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type GalleryImage struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	URL       string    `json:"url" db:"url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type OTPCode struct {
	ID        int       `json:"-" db:"id"`
	Phone     string    `json:"-" db:"phone"`
	CodeHash  string    `json:"-" db:"code_hash"`
	ExpiresAt time.Time `json:"-" db:"expires_at"`
	Consumed  bool      `json:"-" db:"consumed"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// CarDetails is the public car page payload.
type CarDetails struct {
	Car         Car      `json:"car"`
	Reviews     []Review `json:"reviews"`
	AvgRating   float64  `json:"avgRating"`
	ReviewCount int      `json:"reviewCount"`
}

// Quote is the server-side price breakdown for a prospective booking.
type Quote struct {
	RentalDays  int   `json:"rentalDays"`
	PricePerDay int64 `json:"pricePerDay"`
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}
