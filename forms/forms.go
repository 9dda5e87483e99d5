// Package forms declares the storefront's form schemas and decodes validated
// input into typed records.
package forms

import (
	"regexp"

	"github.com/dmitrymomot/atelier/catalog"
	"github.com/dmitrymomot/atelier/pkg/forms"
	"github.com/dmitrymomot/atelier/pkg/validator"
)

// Measurement field names, in display order.
const (
	Neck     = "neck"
	Chest    = "chest"
	Waist    = "waist"
	Hips     = "hips"
	Sleeve   = "sleeve"
	Inseam   = "inseam"
	Shoulder = "shoulder"
	Thigh    = "thigh"
)

// Checkout field names.
const (
	FullName   = "fullName"
	Address    = "address"
	City       = "city"
	PostalCode = "postalCode"
	Country    = "country"
	CardName   = "cardName"
	CardNumber = "cardNumber"
	ExpiryDate = "expiryDate"
	CVC        = "cvc"
)

// Profile field names.
const (
	Name  = "name"
	Email = "email"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcRe        = regexp.MustCompile(`^\d{3,4}$`)
)

// Measurements validates the eight body measurements in centimeters.
var Measurements = forms.NewSchema("measurements",
	forms.Number(Neck, "Neck", 20, 60, "cm").
		WithHint("Measure around the base of your neck, where a collar would sit."),
	forms.Number(Chest, "Chest", 60, 160, "cm").
		WithHint("Measure around the fullest part of your chest, under your armpits."),
	forms.Number(Waist, "Waist", 50, 150, "cm").
		WithHint("Measure around your natural waistline, the narrowest part of your torso."),
	forms.Number(Hips, "Hips", 60, 160, "cm").
		WithHint("Measure around the fullest part of your hips and seat."),
	forms.Number(Sleeve, "Sleeve", 40, 100, "cm").
		WithHint("Measure from the top of your shoulder down to your wrist bone."),
	forms.Number(Inseam, "Inseam", 50, 120, "cm").
		WithHint("Measure from your crotch to the bottom of your ankle."),
	forms.Number(Shoulder, "Shoulder Width", 30, 70, "cm").
		WithHint("Measure from the edge of one shoulder to the other across your back."),
	forms.Number(Thigh, "Thigh", 40, 100, "cm").
		WithHint("Measure around the fullest part of your thigh."),
)

// Checkout validates shipping and payment details.
var Checkout = forms.NewSchema("checkout",
	forms.Text(FullName, "Full Name", 2, "Full name is required"),
	forms.Text(Address, "Street Address", 5, "A valid address is required"),
	forms.Text(City, "City", 2, "City is required"),
	forms.Text(PostalCode, "Postal Code", 4, "A valid postal code is required"),
	forms.Text(Country, "Country", 2, "Country is required"),
	forms.Text(CardName, "Name on Card", 2, "Name on card is required"),
	forms.Pattern(CardNumber, "Card Number", cardNumberRe, "Enter a valid 16-digit card number"),
	forms.Pattern(ExpiryDate, "Expiry Date", expiryRe, "Use MM/YY format"),
	forms.Pattern(CVC, "CVC", cvcRe, "Invalid CVC"),
)

// Profile validates the account owner's personal information.
var Profile = forms.NewSchema("profile",
	forms.Text(Name, "Full Name", 2, "Name must be at least 2 characters."),
	forms.Email(Email, "Email Address", "Please enter a valid email address."),
)

// CheckoutDetails are validated shipping and payment details. They are never stored.
type CheckoutDetails struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	Country    string
	CardName   string
	CardNumber string
	ExpiryDate string
	CVC        string
}

// UserProfile is the account owner's name and email.
type UserProfile struct {
	Name  string
	Email string
}

// DecodeMeasurements returns the measurements of a valid result. An invalid
// result yields the zero value and its errors.
func DecodeMeasurements(res forms.Result) (catalog.Measurements, error) {
	if err := res.Err(); err != nil {
		return catalog.Measurements{}, err
	}
	return catalog.Measurements{
		Neck:     res.Number(Neck),
		Chest:    res.Number(Chest),
		Waist:    res.Number(Waist),
		Hips:     res.Number(Hips),
		Sleeve:   res.Number(Sleeve),
		Inseam:   res.Number(Inseam),
		Shoulder: res.Number(Shoulder),
		Thigh:    res.Number(Thigh),
	}, nil
}

// DecodeCheckout returns the details of a valid result.
func DecodeCheckout(res forms.Result) (CheckoutDetails, error) {
	if err := res.Err(); err != nil {
		return CheckoutDetails{}, err
	}
	return CheckoutDetails{
		FullName:   res.Raw(FullName),
		Address:    res.Raw(Address),
		City:       res.Raw(City),
		PostalCode: res.Raw(PostalCode),
		Country:    res.Raw(Country),
		CardName:   res.Raw(CardName),
		CardNumber: res.Raw(CardNumber),
		ExpiryDate: res.Raw(ExpiryDate),
		CVC:        res.Raw(CVC),
	}, nil
}

// DecodeProfile returns the profile of a valid result.
func DecodeProfile(res forms.Result) (UserProfile, error) {
	if err := res.Err(); err != nil {
		return UserProfile{}, err
	}
	return UserProfile{Name: res.Raw(Name), Email: res.Raw(Email)}, nil
}

// ProfileName validates the measurement profile name, which must not be blank.
// It is checked only after the measurements themselves pass.
func ProfileName(name string) validator.Rule {
	return validator.RequiredString("profileName", name).
		WithMessage("Please enter a name for your measurement profile.")
}
