package parcel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var (
	// ErrContactIsNotConstructed is returned when a Contact instance was not created
	// through the NewContact factory method.
	ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

	// phonePattern matches a generic international phone number: an optional
	// leading plus followed by 1 to 16 digits, after separators are removed.
	phonePattern = regexp.MustCompile(`^\+?\d{1,16}$`)

	// phoneSeparators removes the characters commonly used to format phone
	// numbers before the shape is checked.
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// ContactRole distinguishes the two parties of a package and prefixes the
// field names reported in validation errors (senderName, recipientPhone, ...).
type ContactRole string

const (
	// RoleSender identifies the party shipping the package.
	RoleSender ContactRole = "sender"

	// RoleRecipient identifies the party receiving the package.
	RoleRecipient ContactRole = "recipient"
)

// Contact is a value object holding one party's name, address and phone.
// All three fields are required and non-blank; the phone must have a valid
// international shape. Contact is immutable once constructed.
//
// Example:
//
//	sender, err := parcel.NewContact(parcel.RoleSender, "Alice", "1 Main St", "+1 555 123-4567")
//	if err != nil {
//	    // err joins one errs.ValueIsRequiredError / ValueIsInvalidError per bad field
//	}
type Contact struct { //nolint:recvcheck //using for validation
	role    ContactRole
	name    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewContact creates a validated Contact for the given role.
// Every violated field produces its own error; the returned error joins all
// of them so callers can report the complete list, not just the first.
func NewContact(role ContactRole, name, address, phone string) (Contact, error) {
	contact := Contact{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		contact.setName(name),
		contact.setAddress(address),
		contact.setPhone(phone),
	); err != nil {
		return Contact{}, err
	}

	return contact, nil
}

// Validate ensures the Contact was created through the constructor.
// Returns ErrContactIsNotConstructed if validation fails.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Role returns which party the contact describes.
func (c Contact) Role() ContactRole {
	return c.role
}

// Name returns the contact's name.
func (c Contact) Name() string {
	return c.name
}

// Address returns the contact's address.
func (c Contact) Address() string {
	return c.address
}

// Phone returns the contact's phone number as supplied, trimmed.
func (c Contact) Phone() string {
	return c.phone
}

func (c *Contact) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError(string(c.role) + "Name")
	}
	c.name = name
	return nil
}

func (c *Contact) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError(string(c.role) + "Address")
	}
	c.address = address
	return nil
}

func (c *Contact) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError(string(c.role) + "Phone")
	}

	if !phonePattern.MatchString(phoneSeparators.Replace(phone)) {
		return errs.NewValueIsInvalidErrorWithCause(
			string(c.role)+"Phone",
			fmt.Errorf("%q is not a valid phone number", phone),
		)
	}

	c.phone = phone
	return nil
}
