package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salon-booking/internal/models"
)

func TestValidate_Settings(t *testing.T) {
	assert.Nil(t, Validate(models.DefaultSettings()))

	errs := Validate(models.ShopSettings{
		ShopName:    "",
		PhoneNumber: "+1 781",
		OpeningTime: "9:00",
		ClosingTime: "24:00",
	})
	assert.Equal(t, "This field is required", errs["shopName"])
	assert.Equal(t, "Must contain digits only", errs["phoneNumber"])
	assert.Equal(t, "Must be a 24-hour time (HH:MM)", errs["openingTime"])
	assert.Equal(t, "Must be a 24-hour time (HH:MM)", errs["closingTime"])
}

func TestValidate_Service(t *testing.T) {
	for _, s := range models.DefaultServices() {
		assert.Nil(t, Validate(s), s.ID)
	}

	errs := Validate(models.Service{ID: "x", Name: "Nails", DurationMinutes: 0, Price: -1})
	assert.Equal(t, "Must be greater than 0", errs["durationMinutes"])
	assert.Equal(t, "Must be at least 0", errs["price"])
}

func TestValidate_Booking(t *testing.T) {
	b := models.Booking{
		Service:       models.DefaultServices()[0],
		Date:          time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Time:          "14:45",
		CustomerName:  "Sarah Smith",
		PaymentMethod: models.PaymentCashApp,
	}
	assert.Nil(t, Validate(b))

	b.PaymentMethod = "Bitcoin"
	b.CustomerName = ""
	errs := Validate(b)
	assert.Equal(t, "Must be one of Cash, Zelle, CashApp", errs["paymentMethod"])
	assert.Equal(t, "This field is required", errs["customerName"])

	b.PaymentMethod = ""
	assert.Contains(t, Validate(b), "paymentMethod")
}

func TestSummary(t *testing.T) {
	got := Summary(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}
