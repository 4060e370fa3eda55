// Package checkout validates the order form and the newsletter signup.
// There is no payment processing and no order persistence: a valid submission
// just mints a confirmation id.
package checkout

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// PaymentMethod selects how the demo order would be paid.
type PaymentMethod string

const (
	PayCard     PaymentMethod = "card"
	PayCash     PaymentMethod = "cash"
	PayTransfer PaymentMethod = "transfer"
)

// PaymentMethods lists the selectable methods in cycle order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PayCard, PayCash, PayTransfer}
}

var paymentLabels = map[PaymentMethod]string{
	PayCard:     "Банковская карта",
	PayCash:     "Наличными при получении",
	PayTransfer: "Банковский перевод",
}

// Label returns the display label for the payment method.
func (m PaymentMethod) Label() string {
	if label, ok := paymentLabels[m]; ok {
		return label
	}
	return string(m)
}

// Form carries the checkout fields. Postal code and payment method are
// optional; everything else is required.
type Form struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Payment    PaymentMethod
}

// requiredFields pairs field accessors with their display names, in form order.
var requiredFields = []struct {
	name string
	get  func(Form) string
}{
	{"firstName", func(f Form) string { return f.FirstName }},
	{"lastName", func(f Form) string { return f.LastName }},
	{"email", func(f Form) string { return f.Email }},
	{"phone", func(f Form) string { return f.Phone }},
	{"address", func(f Form) string { return f.Address }},
	{"city", func(f Form) string { return f.City }},
}

// Missing returns the names of required fields that are empty, in form order.
// An empty result means the form is submittable.
func (f Form) Missing() []string {
	var missing []string
	for _, field := range requiredFields {
		if strings.TrimSpace(field.get(f)) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

// NewOrderID mints a confirmation id for a successful submission.
func NewOrderID() string {
	return uuid.NewString()
}

// emailPattern is a presence-level check, not full RFC 5322 validation.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether the address passes the basic pattern check used
// by the newsletter signup.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
