package entities

import (
	"net/mail"
	"strings"
	"time"
)

// Customer owns vehicles and work orders. Customers are never deleted; they are
// deactivated to keep the service history.
//
// Storage model (DynamoDB):
//   - PK: id
//   - unique_keys item "customer#document#<document>" keeps the document unique
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Document  string    `json:"document"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerPatch carries the fields an update may touch. The document is immutable.
type CustomerPatch struct {
	Name   *string
	Phone  *string
	Email  *string
	Active *bool
}

func NormalizeDocument(document string) string {
	return strings.TrimSpace(document)
}

func (c Customer) Validate() error {
	if n := len(strings.TrimSpace(c.Name)); n < 3 || n > 100 {
		return NewValidation("name", "must have between 3 and 100 characters")
	}
	if n := len(strings.TrimSpace(c.Phone)); n < 8 || n > 20 {
		return NewValidation("phone", "must have between 8 and 20 characters")
	}
	if n := len(c.Document); n < 11 || n > 14 {
		return NewValidation("document", "must have between 11 and 14 characters")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return NewValidation("email", "malformed address")
		}
	}
	return nil
}

// Apply copies the supplied fields onto the customer and validates the result.
func (c *Customer) Apply(p CustomerPatch) error {
	next := *c
	if p.Name != nil {
		next.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		next.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Email != nil {
		next.Email = strings.TrimSpace(*p.Email)
	}
	if p.Active != nil {
		next.Active = *p.Active
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
