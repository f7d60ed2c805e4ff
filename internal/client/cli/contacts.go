package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

// clearValue typed at an edit prompt removes an optional field.
const clearValue = "-"

func (a *App) List(ctx context.Context) error {
	items, err := a.client.ListContacts(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No contacts yet")
		return nil
	}
	for _, c := range items {
		fmt.Fprintln(a.out, formatContact(c))
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optional)", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}

	c, err := a.client.CreateContact(ctx, models.ContactInput{Name: name, Email: optional(email), Phone: optional(phone)})
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Added %s\n", formatContact(*c))
	return nil
}

// Edit shows the current values; an empty answer keeps a field and "-"
// clears an optional one.
func (a *App) Edit(ctx context.Context, rawID string) error {
	id, err := a.contactID(rawID, "Enter contact id to edit")
	if err != nil {
		return err
	}

	items, err := a.client.ListContacts(ctx)
	if err != nil {
		return a.report(err)
	}
	var current *models.Contact
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		fmt.Fprintln(a.out, "Contact not found")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", current.Name), a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", deref(current.Email)), a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", deref(current.Phone)), a.out)
	if err != nil {
		return err
	}

	in := models.ContactInput{
		Name:  keep(name, current.Name),
		Email: edited(email, current.Email),
		Phone: edited(phone, current.Phone),
	}
	c, err := a.client.UpdateContact(ctx, id, in)
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Updated %s\n", formatContact(*c))
	return nil
}

func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := a.contactID(rawID, "Enter contact id to delete")
	if err != nil {
		return err
	}
	if err := a.client.DeleteContact(ctx, id); err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Deleted")
	return nil
}

func (a *App) contactID(raw, prompt string) (int64, error) {
	if raw == "" {
		var err error
		if raw, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		err = fmt.Errorf("invalid contact id %q", raw)
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return 0, err
	}
	return id, nil
}

func formatContact(c models.Contact) string {
	parts := []string{fmt.Sprintf("#%d %s", c.ID, c.Name)}
	if c.Email != nil {
		parts = append(parts, *c.Email)
	}
	if c.Phone != nil {
		parts = append(parts, *c.Phone)
	}
	return strings.Join(parts, " | ")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func keep(answer, current string) string {
	if answer == "" {
		return current
	}
	return answer
}

func edited(answer string, current *string) *string {
	switch answer {
	case "":
		return current
	case clearValue:
		return nil
	default:
		return &answer
	}
}
