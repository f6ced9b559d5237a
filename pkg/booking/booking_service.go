package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Gardener-Assistant-Backend/domain"
	"Gardener-Assistant-Backend/entities"
	"Gardener-Assistant-Backend/internal/utils/mailing"
	"Gardener-Assistant-Backend/pkg/field"
	"Gardener-Assistant-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BookingService interface {
		CreateBooking(ctx context.Context, req domain.CreateBookingRequest, userID string) (domain.BookingResponse, error)
		GetBookings(ctx context.Context, userID string) ([]domain.BookingResponse, error)
		CancelBooking(ctx context.Context, id string, userID string) error
	}

	bookingService struct {
		bookingRepository BookingRepository
		fieldRepository   field.FieldRepository
		userRepository    user.UserRepository
	}
)

func NewBookingService(bookingRepository BookingRepository, fieldRepository field.FieldRepository, userRepository user.UserRepository) BookingService {
	return &bookingService{
		bookingRepository: bookingRepository,
		fieldRepository:   fieldRepository,
		userRepository:    userRepository,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req domain.CreateBookingRequest, userID string) (domain.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BookingResponse{}, domain.ErrParseUUID
	}

	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		return domain.BookingResponse{}, err
	}
	if scheduledDate.Before(time.Now().Truncate(24 * time.Hour)) {
		return domain.BookingResponse{}, domain.ErrBookingDateInPast
	}

	bookedField, err := s.fieldRepository.GetFieldByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BookingResponse{}, domain.ErrFieldNotFound
		}
		return domain.BookingResponse{}, err
	}
	if bookedField.UserID != userUUID {
		return domain.BookingResponse{}, domain.ErrUserNotAllowed
	}

	booking := &entities.DroneBooking{
		ID:            uuid.New(),
		UserID:        userUUID,
		FieldID:       bookedField.ID,
		ServiceType:   req.ServiceType,
		ScheduledDate: scheduledDate,
		Status:        "Pending",
		Notes:         req.Notes,
	}

	if err := s.bookingRepository.CreateBooking(ctx, booking); err != nil {
		return domain.BookingResponse{}, err
	}

	// Confirmation mail is best effort; a failed send never fails the booking.
	if gardener, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		body := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your drone %s service for field <b>%s</b> is booked for %s. We will confirm the slot shortly.</p>",
			gardener.Name, booking.ServiceType, bookedField.Name, scheduledDate.Format("2 January 2006"),
		)
		if err := mailing.SendMail(gardener.Email, "Drone service booking received", body); err != nil {
			log.Printf("failed to send booking mail: %v", err)
		}
	}

	return toBookingResponse(booking), nil
}

func (s *bookingService) GetBookings(ctx context.Context, userID string) ([]domain.BookingResponse, error) {
	bookings, err := s.bookingRepository.GetBookingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.BookingResponse
	for _, booking := range bookings {
		response = append(response, toBookingResponse(booking))
	}
	return response, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id string, userID string) error {
	booking, err := s.bookingRepository.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookingNotFound
		}
		return err
	}

	if booking.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if booking.Status == "Cancelled" {
		return domain.ErrBookingAlreadyClosed
	}

	booking.Status = "Cancelled"
	return s.bookingRepository.UpdateBooking(ctx, booking)
}

func toBookingResponse(booking *entities.DroneBooking) domain.BookingResponse {
	return domain.BookingResponse{
		ID:            booking.ID.String(),
		FieldID:       booking.FieldID.String(),
		ServiceType:   booking.ServiceType,
		ScheduledDate: booking.ScheduledDate,
		Status:        booking.Status,
		Notes:         booking.Notes,
	}
}
