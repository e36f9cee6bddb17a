package checkout

import (
	"regexp"
	"strings"
	"time"

	apperrors "github.com/marwandev/formalflow-backend/pkg/errors"
)

var (
	emailRe  = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)
	phoneRe  = regexp.MustCompile(`^\d{10,15}$`)
	nonDigit = regexp.MustCompile(`\D`)
)

// Draft carries the contact and delivery details submitted at checkout.
type Draft struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryDate    string `json:"delivery_date"`
}

// Validate checks the draft against the same rules the storefront enforces.
// The delivery date must be one of the currently offered options.
func (d Draft) Validate(now time.Time) error {
	if !emailRe.MatchString(d.Email) {
		return apperrors.New(apperrors.CodeValidation, "a valid email address is required")
	}
	// separators and a leading + are fine, only the digit count matters
	if !phoneRe.MatchString(nonDigit.ReplaceAllString(d.Phone, "")) {
		return apperrors.New(apperrors.CodeValidation, "phone number must contain 10 to 15 digits")
	}
	if strings.TrimSpace(d.DeliveryAddress) == "" {
		return apperrors.New(apperrors.CodeValidation, "delivery address is required")
	}
	if d.DeliveryDate == "" {
		return apperrors.New(apperrors.CodeValidation, "delivery date is required")
	}
	if !isOfferedDate(now, d.DeliveryDate) {
		return apperrors.New(apperrors.CodeValidation, "delivery date is not one of the offered options")
	}
	return nil
}
