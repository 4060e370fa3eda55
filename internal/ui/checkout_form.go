package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lavka/internal/checkout"
)

// Field order matches the original order form; the payment selector sits
// after the last text field.
const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldAddress
	fieldCity
	fieldPostal
	fieldPayment
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Имя *",
	"Фамилия *",
	"Email *",
	"Телефон *",
	"Адрес *",
	"Город *",
	"Индекс",
	"Способ оплаты",
}

// checkoutForm manages the checkout text inputs and the payment selector.
type checkoutForm struct {
	inputs  [fieldPayment]textinput.Model
	focus   int
	payment int // index into checkout.PaymentMethods()
}

func newCheckoutForm() checkoutForm {
	var f checkoutForm
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 120
		f.inputs[i] = in
	}
	return f
}

// value assembles the domain form from the current inputs.
func (f checkoutForm) value() checkout.Form {
	return checkout.Form{
		FirstName:  f.inputs[fieldFirstName].Value(),
		LastName:   f.inputs[fieldLastName].Value(),
		Email:      f.inputs[fieldEmail].Value(),
		Phone:      f.inputs[fieldPhone].Value(),
		Address:    f.inputs[fieldAddress].Value(),
		City:       f.inputs[fieldCity].Value(),
		PostalCode: f.inputs[fieldPostal].Value(),
		Payment:    checkout.PaymentMethods()[f.payment],
	}
}

func (f *checkoutForm) focusField(idx int) {
	f.focus = idx
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *checkoutForm) focusNext() {
	f.focusField((f.focus + 1) % fieldCount)
}

func (f *checkoutForm) focusPrev() {
	f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

func (f checkoutForm) paymentFocused() bool {
	return f.focus == fieldPayment
}

func (f *checkoutForm) cyclePayment(forward bool) {
	n := len(checkout.PaymentMethods())
	if forward {
		f.payment = (f.payment + 1) % n
	} else {
		f.payment = (f.payment + n - 1) % n
	}
}

// update forwards the message to the focused text input.
func (f checkoutForm) update(msg tea.Msg) (checkoutForm, tea.Cmd) {
	if f.focus >= fieldPayment {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}
