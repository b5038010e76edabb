package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"vrzone-backend/models"
	"vrzone-backend/utils"
)

// SelectionNotChosen is recorded when the form carried neither a duration
// nor a game choice. Not choosing is allowed, not an error.
const SelectionNotChosen = "not selected"

// SubmitInput is the raw booking form, five free-form strings. The HTTP
// layer does no interpretation beyond field extraction.
type SubmitInput struct {
	Name      string
	Phone     string
	Date      string
	Time      string
	Selection string
}

// BookingService reconciles submissions against the customer table and
// records bookings. One instance is constructed at startup and shared by
// every request handler.
type BookingService struct {
	db         *gorm.DB
	dispatcher *Dispatcher
	log        zerolog.Logger

	// now is swapped out in tests
	now func() time.Time
}

func NewBookingService(db *gorm.DB, dispatcher *Dispatcher, log zerolog.Logger) *BookingService {
	return &BookingService{
		db:         db,
		dispatcher: dispatcher,
		log:        log.With().Str("component", "booking").Logger(),
		now:        time.Now,
	}
}

// Submit validates the form, upserts the customer by phone, inserts the
// booking in the same transaction, and queues an operator notification.
//
// The returned error is either a *ValidationError (show Reason to the
// submitter) or a *PersistenceError (show a generic try-again message).
// Notification delivery can never fail a submission: it is handed to the
// dispatcher after commit and not awaited.
func (s *BookingService) Submit(input SubmitInput) (*models.Booking, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	date := strings.TrimSpace(input.Date)
	timeOfDay := strings.TrimSpace(input.Time)

	if err := validateBooking(name, phone, date, timeOfDay); err != nil {
		return nil, err
	}

	selection := strings.TrimSpace(input.Selection)
	if selection == "" {
		selection = SelectionNotChosen
	}

	booking, err := s.record(name, phone, date, timeOfDay, selection)
	if err != nil {
		s.log.Error().Err(err).Str("phone", phone).Msg("booking transaction failed")
		return nil, &PersistenceError{Err: err}
	}

	s.dispatcher.Send(s.formatNotification(booking))

	return booking, nil
}

// record runs the reconciliation transaction. A duplicate-key failure on
// the customer insert means another request created the same customer
// between our lookup and insert; the transaction is aborted at that point,
// so the whole unit retries once and finds the customer on the second pass.
func (s *BookingService) record(name, phone, date, timeOfDay, selection string) (*models.Booking, error) {
	var booking *models.Booking

	run := func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			customer, err := s.reconcileCustomer(tx, name, phone)
			if err != nil {
				return err
			}

			b := models.Booking{
				CustomerID: &customer.ID,
				Name:       name,
				Phone:      phone,
				Date:       date,
				Time:       timeOfDay,
				Duration:   selection,
				CreatedAt:  s.now(),
			}
			if err := tx.Create(&b).Error; err != nil {
				return err
			}
			booking = &b
			return nil
		})
	}

	err := run()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = run()
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// reconcileCustomer finds the customer by exact phone match, creating one
// on first contact. A later submission under the same phone with a
// different name overwrites the stored name, last write wins, no history.
func (s *BookingService) reconcileCustomer(tx *gorm.DB, name, phone string) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("phone = ?", phone).First(&customer).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		customer = models.Customer{
			Name:             name,
			Phone:            phone,
			FirstBookingDate: s.now(),
		}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	case err != nil:
		return nil, err
	}

	if customer.Name != name {
		if err := tx.Model(&customer).Update("name", name).Error; err != nil {
			return nil, err
		}
		customer.Name = name
	}
	return &customer, nil
}

func (s *BookingService) formatNotification(b *models.Booking) string {
	return fmt.Sprintf(
		"🚀 <b>New VR ZONE booking</b>\n\n👤 %s\n📞 %s\n📅 %s at %s\n🎮 %s\n⏰ %s",
		b.Name, b.Phone, b.Date, b.Time, b.Duration,
		s.now().Format("02.01.2006 15:04"),
	)
}

func validateBooking(name, phone, date, timeOfDay string) error {
	if name == "" || phone == "" || date == "" || timeOfDay == "" {
		return &ValidationError{Kind: KindMissingFields, Reason: "Please fill in all fields"}
	}
	if len([]rune(name)) < 2 {
		return &ValidationError{Kind: KindNameTooShort, Reason: "Name is too short"}
	}
	if !utils.ValidatePhone(phone) {
		return &ValidationError{Kind: KindInvalidPhone, Reason: "Invalid phone number"}
	}
	return nil
}
