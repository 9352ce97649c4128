package model

import "time"

type Notification struct {
	ID         int       `json:"id" db:"id"`
	Kind       string    `json:"kind" db:"kind"`
	Phone      string    `json:"phone" db:"phone"`
	Message    string    `json:"message" db:"message"`
	BookingUid string    `json:"bookingUid,omitempty" db:"booking_uid"`
	Sent       bool      `json:"sent" db:"sent"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type NotificationInfo struct {
	Data []Notification `json:"data"`
}
