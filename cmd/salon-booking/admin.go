package main

import (
	"bufio"
	"fmt"
	"strings"

	"salon-booking/internal/admin"
	"salon-booking/internal/models"
)

func (a *app) runAdmin(scanner *bufio.Scanner) {
	if !a.session.Authenticated() {
		password, ok := prompt(scanner, "\n🔒 Admin password: ")
		if !ok {
			return
		}
		if err := a.session.Login(password); err != nil {
			fmt.Println("❌ Incorrect password")
			return
		}
	}

	editor := admin.NewEditor(a.catalog, a.session, a.log)

	for {
		fmt.Println("\nAdministration:")
		fmt.Println("  1. List services")
		fmt.Println("  2. Add service")
		fmt.Println("  3. Edit service")
		fmt.Println("  4. Remove service")
		fmt.Println("  5. Save services")
		fmt.Println("  6. Edit settings")
		fmt.Println("  7. Save settings")
		fmt.Println("  8. Logout")
		fmt.Println("  9. Back")

		command, ok := prompt(scanner, "\nEnter command (1-9): ")
		if !ok {
			return
		}

		var err error
		switch command {
		case "1":
			listServices(editor)
		case "2":
			var svc models.Service
			if svc, err = editor.AddService(); err == nil {
				fmt.Printf("Added %s (%s). Remember to save.\n", svc.Name, svc.ID)
			}
		case "3":
			err = editService(scanner, editor)
		case "4":
			err = removeService(scanner, editor)
		case "5":
			if err = editor.SaveServices(); err == nil {
				fmt.Println("✅ Services saved!")
			}
		case "6":
			err = editSettings(scanner, editor)
		case "7":
			if err = editor.SaveSettings(); err == nil {
				fmt.Println("✅ Settings saved!")
			}
		case "8":
			a.session.Logout()
			return
		case "9":
			return
		default:
			fmt.Println("Invalid command. Please try again.")
		}
		if err != nil {
			fmt.Printf("❌ %v\n", err)
		}
	}
}

func listServices(editor *admin.Editor) {
	settings := editor.Settings()
	services := editor.Services()
	fmt.Printf("\n📋 Services (%d total):\n", len(services))
	fmt.Println(strings.Repeat("-", 60))
	for _, s := range services {
		fmt.Printf("ID: %s\n", s.ID)
		fmt.Printf("Name: %s  [%s]\n", s.Name, s.CategoryOrDefault())
		fmt.Printf("Description: %s\n", s.Description)
		fmt.Printf("Price: %s  Duration: %d min\n", models.FormatPrice(settings.Currency, s.Price), s.DurationMinutes)
		fmt.Println(strings.Repeat("-", 60))
	}
}

func editService(scanner *bufio.Scanner, editor *admin.Editor) error {
	id, ok := prompt(scanner, "Service ID: ")
	if !ok {
		return nil
	}
	if _, found := models.FindService(editor.Services(), id); !found {
		fmt.Println("No service with that ID.")
		return nil
	}
	field, ok := prompt(scanner, "Field (name, description, category, durationMinutes, price): ")
	if !ok {
		return nil
	}
	value, ok := prompt(scanner, "New value: ")
	if !ok {
		return nil
	}
	return editor.UpdateService(id, admin.Field(field), value)
}

func removeService(scanner *bufio.Scanner, editor *admin.Editor) error {
	id, ok := prompt(scanner, "Service ID: ")
	if !ok {
		return nil
	}
	return editor.RemoveService(id, func(s models.Service) bool {
		answer, ok := prompt(scanner, fmt.Sprintf("Are you sure you want to delete %q? (y/n): ", s.Name))
		return ok && strings.EqualFold(answer, "y")
	})
}

func editSettings(scanner *bufio.Scanner, editor *admin.Editor) error {
	s := editor.Settings()
	fields := []struct {
		field   admin.Field
		label   string
		current string
	}{
		{admin.FieldShopName, "Shop name", s.ShopName},
		{admin.FieldPhoneNumber, "WhatsApp number (intl format, no +)", s.PhoneNumber},
		{admin.FieldOpeningTime, "Opening time (HH:MM)", s.OpeningTime},
		{admin.FieldClosingTime, "Closing time (HH:MM)", s.ClosingTime},
		{admin.FieldCurrency, "Currency", s.Currency},
	}

	fmt.Println("\n⚙️  Shop Configuration (empty keeps the current value)")
	for _, f := range fields {
		value, ok := prompt(scanner, fmt.Sprintf("%s [%s]: ", f.label, f.current))
		if !ok {
			return nil
		}
		if value == "" {
			continue
		}
		if err := editor.UpdateSettings(f.field, value); err != nil {
			return err
		}
	}
	fmt.Println("Remember to save settings.")
	return nil
}
