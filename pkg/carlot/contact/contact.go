package contact

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultDelay is how long a simulated submission takes.
const DefaultDelay = 1500 * time.Millisecond

var (
	// ErrMissingFields is returned when name, email or message is empty.
	ErrMissingFields = errors.New("please fill in all required fields")
	// ErrInvalidEmail is returned for an email that does not parse.
	ErrInvalidEmail = errors.New("please enter a valid email address")
)

// Form is a contact form submission.
type Form struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// Validate checks the required fields.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.Message) == "" {
		return ErrMissingFields
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEmail, err)
	}
	return nil
}

// PrefillMessage is the message body suggested when a visitor inquires
// about car.
func PrefillMessage(car string) string {
	if car == "" {
		return ""
	}
	return fmt.Sprintf("I'm interested in the %s. Please send me more information and schedule a test drive.", car)
}

// Result is the outcome of a submission.
type Result struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// Submitter simulates sending contact messages. Nothing is stored.
type Submitter struct {
	delay time.Duration
	log   zerolog.Logger
}

// NewSubmitter returns a submitter that waits delay before confirming.
func NewSubmitter(delay time.Duration, log zerolog.Logger) *Submitter {
	if delay < 0 {
		delay = 0
	}
	return &Submitter{delay: delay, log: log}
}

// Submit validates f and, after the configured delay, confirms it.
func (s *Submitter) Submit(ctx context.Context, f Form) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}

	ref := uuid.NewString()
	s.log.Info().Str("reference", ref).Str("subject", f.Subject).Msg("sending contact message")

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Result{}, fmt.Errorf("submit contact message: %w", ctx.Err())
		case <-t.C:
		}
	}

	return Result{
		Reference: ref,
		Message:   fmt.Sprintf("Thank you %s! Your message has been sent successfully. We'll contact you within 24 hours.", f.Name),
	}, nil
}
