package checkout

import "testing"

func filledForm() Form {
	return Form{
		FirstName: "Иван",
		LastName:  "Петров",
		Email:     "ivan@example.com",
		Phone:     "+7 900 000-00-00",
		Address:   "ул. Ленина, 1",
		City:      "Москва",
		Payment:   PayCard,
	}
}

func TestMissing_CompleteFormIsSubmittable(t *testing.T) {
	if missing := filledForm().Missing(); len(missing) != 0 {
		t.Fatalf("Missing() = %v, want empty", missing)
	}
}

func TestMissing_ReportsEmptyRequiredFields(t *testing.T) {
	f := filledForm()
	f.FirstName = ""
	f.City = "   " // whitespace counts as empty

	missing := f.Missing()
	if len(missing) != 2 {
		t.Fatalf("Missing() = %v, want 2 fields", missing)
	}
	if missing[0] != "firstName" || missing[1] != "city" {
		t.Fatalf("Missing() = %v, want [firstName city]", missing)
	}
}

func TestMissing_OptionalFieldsDoNotCount(t *testing.T) {
	f := filledForm()
	f.PostalCode = ""
	f.Payment = ""

	if missing := f.Missing(); len(missing) != 0 {
		t.Fatalf("Missing() = %v, want empty", missing)
	}
}

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ivan@example.com", true},
		{"a@b.cd", true},
		{"имя@почта.рф", true},
		{"", false},
		{"without-at.example.com", false},
		{"no@dot", false},
		{"spa ce@example.com", false},
		{"double@@example.com", false},
	}
	for _, tc := range cases {
		if got := ValidEmail(tc.email); got != tc.want {
			t.Fatalf("ValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestPaymentMethodLabels(t *testing.T) {
	if got := PayCard.Label(); got != "Банковская карта" {
		t.Fatalf("PayCard.Label() = %q, want Банковская карта", got)
	}
	if got := PaymentMethod("crypto").Label(); got != "crypto" {
		t.Fatalf("unknown method label = %q, want crypto", got)
	}
}

func TestNewOrderID_Unique(t *testing.T) {
	a, b := NewOrderID(), NewOrderID()
	if a == "" || b == "" {
		t.Fatal("NewOrderID returned empty id")
	}
	if a == b {
		t.Fatalf("NewOrderID returned duplicate id %q", a)
	}
}
