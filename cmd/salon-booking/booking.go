package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"salon-booking/internal/booking"
	"salon-booking/internal/models"
	"salon-booking/internal/slots"
)

func (a *app) runBooking(ctx context.Context, scanner *bufio.Scanner) {
	settings := a.catalog.Settings()
	services := a.catalog.Services()
	if len(services) == 0 {
		fmt.Println("\nNo services available at the moment.")
		return
	}

	flow := booking.NewFlow(settings, booking.WithWindowDays(a.cfg.BookingWindowDays))

	for {
		step := flow.Step()
		fmt.Printf("\n%s  %s\n", stepsIndicator(step), step.Title())

		var ok bool
		switch step {
		case booking.SelectingService:
			ok = selectService(scanner, flow, settings, services)
		case booking.SelectingDateTime:
			ok = selectDateTime(scanner, flow)
		case booking.EnteringDetails:
			ok = enterDetails(scanner, flow)
		case booking.ReviewingSummary:
			var sent bool
			ok, sent = a.reviewSummary(ctx, scanner, flow, settings)
			if sent {
				return
			}
		}
		if !ok {
			return
		}
	}
}

func stepsIndicator(current booking.Step) string {
	var b strings.Builder
	for _, s := range booking.Steps {
		switch {
		case s == current:
			b.WriteString("●")
		case s < current:
			b.WriteString("•")
		default:
			b.WriteString("○")
		}
	}
	return b.String()
}

func selectService(scanner *bufio.Scanner, flow *booking.Flow, settings models.ShopSettings, services []models.Service) bool {
	var numbered []models.Service
	for _, group := range models.GroupByCategory(services) {
		fmt.Printf("\n%s\n%s\n", group.Category, strings.Repeat("-", len(group.Category)))
		for _, s := range group.Services {
			numbered = append(numbered, s)
			fmt.Printf("  %2d. %-28s %6s  %d min\n", len(numbered), s.Name,
				models.FormatPrice(settings.Currency, s.Price), s.DurationMinutes)
		}
	}

	answer, ok := prompt(scanner, "\nChoose a service (q to quit): ")
	if !ok || answer == "q" {
		return false
	}
	i, err := strconv.Atoi(answer)
	if err != nil || i < 1 || i > len(numbered) {
		fmt.Println("Invalid choice.")
		return true
	}
	if err := flow.SelectService(numbered[i-1]); err != nil {
		fmt.Printf("❌ %v\n", err)
	}
	return true
}

func selectDateTime(scanner *bufio.Scanner, flow *booking.Flow) bool {
	state := flow.State()
	fmt.Printf("Service: %s\n\n", state.SelectedService.Name)

	if state.SelectedDate == nil {
		dates := flow.Dates()
		today := time.Now()
		for i, d := range dates {
			label := d.Format("Mon Jan 2")
			if slots.SameDay(d, today) {
				label += "  • Today •"
			}
			fmt.Printf("  %2d. %s\n", i+1, label)
		}

		answer, ok := prompt(scanner, "\nChoose a date (b to go back, q to quit): ")
		if !ok || answer == "q" {
			return false
		}
		if answer == "b" {
			report(flow.Back())
			return true
		}
		i, err := strconv.Atoi(answer)
		if err != nil || i < 1 || i > len(dates) {
			fmt.Println("Invalid choice.")
			return true
		}
		if err := flow.SelectDate(dates[i-1]); err != nil {
			fmt.Printf("❌ %v\n", err)
		}
		return true
	}

	fmt.Printf("Date: %s\n", state.SelectedDate.Format("Monday, January 2"))
	available := flow.Slots()
	if len(available) == 0 {
		fmt.Println("No slots available for this date.")
	} else {
		fmt.Println("Available slots:")
		for i, s := range available {
			fmt.Printf("  %2d. %s", i+1, s)
			if (i+1)%4 == 0 {
				fmt.Println()
			}
		}
		fmt.Println()
	}

	answer, ok := prompt(scanner, "\nChoose a time (d to change date, b to go back, q to quit): ")
	if !ok || answer == "q" {
		return false
	}
	switch answer {
	case "b":
		report(flow.Back())
		return true
	case "d":
		report(clearDate(flow, state))
		return true
	}

	i, err := strconv.Atoi(answer)
	if err != nil || i < 1 || i > len(available) {
		fmt.Println("Invalid choice.")
		return true
	}
	if err := flow.SelectTime(available[i-1]); err != nil {
		fmt.Printf("❌ %v\n", err)
	}
	return true
}

// clearDate returns the wizard to date selection for the same service
func clearDate(flow *booking.Flow, state models.BookingState) error {
	if state.SelectedService == nil {
		return booking.ErrWrongStep
	}
	if err := flow.Back(); err != nil {
		return err
	}
	return flow.SelectService(*state.SelectedService)
}

func report(err error) {
	if err != nil {
		fmt.Printf("❌ %v\n", err)
	}
}

func enterDetails(scanner *bufio.Scanner, flow *booking.Flow) bool {
	state := flow.State()
	fmt.Printf("✨ %s · %s at %s\n\n", state.SelectedService.Name,
		state.SelectedDate.Format("Monday, Jan 2"), state.SelectedTime)

	name, ok := prompt(scanner, fmt.Sprintf("Full name [%s]: ", state.CustomerName))
	if !ok {
		return false
	}
	if name != "" {
		report(flow.SetCustomerName(name))
	}

	fmt.Println("Payment method:")
	for i, m := range models.PaymentMethods {
		fmt.Printf("  %d. %s\n", i+1, m)
	}
	choice, ok := prompt(scanner, fmt.Sprintf("Choose (1-%d) [%s]: ", len(models.PaymentMethods), state.PaymentMethod))
	if !ok {
		return false
	}
	if choice != "" {
		if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(models.PaymentMethods) {
			report(flow.SetPaymentMethod(models.PaymentMethods[i-1]))
		} else {
			fmt.Println("Invalid choice.")
		}
	}
	fmt.Println("Payment will be handled at the shop or via your selected app.")

	answer, ok := prompt(scanner, "\nContinue? (y / b to go back / q to quit): ")
	if !ok || answer == "q" {
		return false
	}
	if answer == "b" {
		report(flow.Back())
		return true
	}

	if err := flow.Continue(); errors.Is(err, booking.ErrValidationBlocked) {
		fmt.Println("Please enter your name and choose a payment method.")
	} else if err != nil {
		fmt.Printf("❌ %v\n", err)
	}
	return true
}

func (a *app) reviewSummary(ctx context.Context, scanner *bufio.Scanner, flow *booking.Flow, settings models.ShopSettings) (ok, sent bool) {
	summary, err := flow.Summary()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return true, false
	}

	fmt.Println("Review your booking before sending.")
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-10s %s\n", "Service", summary.Service.Name)
	fmt.Printf("%-10s %s\n", "Date", summary.LongDate())
	fmt.Printf("%-10s %s\n", "Time", summary.Time)
	fmt.Printf("%-10s %s\n", "Payment", summary.PaymentMethod)
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("%-10s %s\n", "Total", models.FormatPrice(settings.Currency, summary.Total()))

	answer, ok := prompt(scanner, "\nSend on WhatsApp? (y / b to go back / q to quit): ")
	if !ok || answer == "q" {
		return false, false
	}
	switch answer {
	case "b":
		report(flow.Back())
		return true, false
	case "y":
		if _, err := a.handoff.Confirm(ctx, flow, settings); err != nil {
			fmt.Printf("❌ Could not send booking: %v\n", err)
			return true, false
		}
		fmt.Println("✅ Booking sent! The shop will confirm your appointment.")
		return true, true
	default:
		return true, false
	}
}
