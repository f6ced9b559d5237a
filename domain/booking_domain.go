package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateBooking = "drone service booked successfully"
	MessageSuccessGetBookings   = "bookings retrieved successfully"
	MessageSuccessCancelBooking = "booking cancelled successfully"

	MessageFailedCreateBooking = "failed to book drone service"
	MessageFailedGetBookings   = "failed to retrieve bookings"
	MessageFailedCancelBooking = "failed to cancel booking"

	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingDateInPast    = errors.New("scheduled date is in the past")
	ErrBookingAlreadyClosed = errors.New("booking already cancelled")
)

type (
	CreateBookingRequest struct {
		FieldID       string `json:"field_id" validate:"required,uuid"`
		ServiceType   string `json:"service_type" validate:"required,oneof=spray survey seeding"`
		ScheduledDate string `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
		Notes         string `json:"notes" validate:"omitempty"`
	}

	BookingResponse struct {
		ID            string    `json:"id"`
		FieldID       string    `json:"field_id"`
		ServiceType   string    `json:"service_type"`
		ScheduledDate time.Time `json:"scheduled_date"`
		Status        string    `json:"status"`
		Notes         string    `json:"notes,omitempty"`
	}
)
