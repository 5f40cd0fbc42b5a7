package domain

import (
	"strings"
	"time"
)

// Name is a user's full name.
type Name struct {
	First  string `json:"first"`
	Middle string `json:"middle"`
	Last   string `json:"last"`
}

// Full joins the non-empty name parts.
func (n Name) Full() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.First, n.Middle, n.Last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// User represents a user record owned by the remote API.
type User struct {
	ID         string    `json:"_id"`
	Name       Name      `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Image      Image     `json:"image"`
	Address    Address   `json:"address"`
	IsBusiness bool      `json:"isBusiness"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Status is the label shown in the admin sandbox.
func (u User) Status() string {
	switch {
	case u.IsAdmin:
		return "Admin User"
	case u.IsBusiness:
		return "Business User"
	default:
		return "Normal User"
	}
}

// Credentials are the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Name       Name         `json:"name"`
	Phone      string       `json:"phone"`
	Email      string       `json:"email"`
	Password   string       `json:"password"`
	Image      Image        `json:"image"`
	Address    AddressInput `json:"address"`
	IsBusiness bool         `json:"isBusiness"`
}

// ProfileInput is the payload for updating an account.
type ProfileInput struct {
	Name    Name         `json:"name"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Image   Image        `json:"image"`
	Address AddressInput `json:"address"`
}

// ProfileFromUser pre-fills a ProfileInput from an existing user.
func ProfileFromUser(u User) ProfileInput {
	return ProfileInput{
		Name:    u.Name,
		Phone:   u.Phone,
		Email:   u.Email,
		Image:   u.Image,
		Address: AddressInputFrom(u.Address),
	}
}
