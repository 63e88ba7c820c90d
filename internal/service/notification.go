package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sotrama/internal/domain"
	"sotrama/internal/logger"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationReservationCreated   NotificationType = "RESERVATION_CREATED"
	NotificationReservationCancelled NotificationType = "RESERVATION_CANCELLED"
	NotificationPaymentSuccess       NotificationType = "PAYMENT_SUCCESS"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]interface{}
	CreatedAt time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would carry an SMS client. Most travellers
	// are reached over SMS, not push.
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyReservationCreated notifies the traveller that seats are held.
func (s *NotificationService) NotifyReservationCreated(ctx context.Context, reservation *domain.Reservation) error {
	notification := Notification{
		Type:    NotificationReservationCreated,
		Title:   "Reservation Confirmed",
		Message: fmt.Sprintf("%d seat(s) reserved on trip %d", reservation.Seats, reservation.TripID),
		Data: map[string]interface{}{
			"reservation_id": reservation.ID,
			"trip_id":        reservation.TripID,
			"seats":          reservation.Seats,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyReservationCancelled notifies the traveller that the seats were released.
func (s *NotificationService) NotifyReservationCancelled(ctx context.Context, reservation *domain.Reservation) error {
	notification := Notification{
		Type:    NotificationReservationCancelled,
		Title:   "Reservation Cancelled",
		Message: fmt.Sprintf("Reservation %d cancelled, %d seat(s) released", reservation.ID, reservation.Seats),
		Data: map[string]interface{}{
			"reservation_id": reservation.ID,
			"trip_id":        reservation.TripID,
			"seats":          reservation.Seats,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyPaymentSucceeded notifies the traveller of a successful payment.
func (s *NotificationService) NotifyPaymentSucceeded(ctx context.Context, reservation *domain.Reservation, amount int64) error {
	notification := Notification{
		Type:    NotificationPaymentSuccess,
		Title:   "Payment Successful",
		Message: fmt.Sprintf("Payment of %d FCFA received for reservation %d", amount, reservation.ID),
		Data: map[string]interface{}{
			"reservation_id": reservation.ID,
			"amount":         amount,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	logger.Info("notification sent",
		zap.String("type", string(notification.Type)),
		zap.String("title", notification.Title),
		zap.String("message", notification.Message),
	)
	return nil
}
