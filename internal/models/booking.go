package models

import (
	"strconv"
	"time"
)

// PaymentMethod represents how the customer intends to pay
type PaymentMethod string

const (
	PaymentCash    PaymentMethod = "Cash"
	PaymentZelle   PaymentMethod = "Zelle"
	PaymentCashApp PaymentMethod = "CashApp"
)

// PaymentMethods lists the accepted payment methods in display order
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentZelle, PaymentCashApp}

// Valid reports whether m is one of the accepted payment methods
func (m PaymentMethod) Valid() bool {
	for _, p := range PaymentMethods {
		if m == p {
			return true
		}
	}
	return false
}

// BookingState is the in-progress selection of the booking wizard.
// Nil pointers and empty strings mean "not chosen yet".
type BookingState struct {
	SelectedService *Service
	SelectedDate    *time.Time // calendar date, midnight local time
	SelectedTime    string     // HH:MM
	CustomerName    string
	PaymentMethod   PaymentMethod
}

// Booking is a fully populated booking ready to be handed off
type Booking struct {
	Service       Service       `json:"service"`
	Date          time.Time     `json:"date" validate:"required"`
	Time          string        `json:"time" validate:"required,hhmm"`
	CustomerName  string        `json:"customerName" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"payment_method"`
}

// Total returns the amount due for the booking
func (b Booking) Total() float64 {
	return b.Service.Price
}

// LongDate formats the booking date as e.g. "Monday, January 5"
func (b Booking) LongDate() string {
	return b.Date.Format("Monday, January 2")
}

// FormatPrice renders an amount with the shop currency, dropping a zero fraction
func FormatPrice(currency string, amount float64) string {
	return currency + strconv.FormatFloat(amount, 'f', -1, 64)
}
