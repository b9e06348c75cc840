package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// User is the customer attached to an order. All fields are private so the
// name/email/phone rules hold on every mutation, not just construction.
type User struct {
	id    string
	name  string
	email string
	phone string
}

// NewUser validates through the setters, so a malformed field fails here
// the same way it would on a later update.
func NewUser(id, name, email, phone string) (*User, error) {
	u := &User{id: id}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetEmail(email); err != nil {
		return nil, err
	}
	if err := u.SetPhone(phone); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) ID() string    { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }

func (u *User) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return InvalidArgumentf("Name cannot be empty")
	}
	u.name = name
	return nil
}

func (u *User) SetEmail(email string) error {
	if !strings.Contains(email, "@") {
		return InvalidArgumentf("Invalid email address")
	}
	u.email = email
	return nil
}

func (u *User) SetPhone(phone string) error {
	if len(phone) < 10 {
		return InvalidArgumentf("Phone number must be at least 10 digits")
	}
	u.phone = phone
	return nil
}

func (u *User) String() string {
	return fmt.Sprintf("User[%s]: %s (%s)", u.id, u.name, u.email)
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"id":    u.id,
		"name":  u.name,
		"email": u.email,
		"phone": u.phone,
	})
}
