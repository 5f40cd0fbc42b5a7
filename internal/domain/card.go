package domain

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"time"
)

// FlexString accepts both JSON strings and JSON numbers. The remote API
// returns numeric house numbers and zip codes while forms submit strings.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the raw value.
func (f FlexString) String() string { return string(f) }

// Image is a picture reference attached to cards and users.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Address is the postal address shared by cards and users.
type Address struct {
	State       string     `json:"state"`
	Country     string     `json:"country"`
	City        string     `json:"city"`
	Street      string     `json:"street"`
	HouseNumber FlexString `json:"houseNumber"`
	Zip         FlexString `json:"zip"`
}

// Card is a business-card record owned by the remote API.
type Card struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Web         string    `json:"web"`
	Image       Image     `json:"image"`
	Address     Address   `json:"address"`
	BizNumber   int64     `json:"bizNumber"`
	Likes       []string  `json:"likes"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsLikedBy reports whether userID is in the card's likes.
func (c Card) IsLikedBy(userID string) bool {
	if userID == "" {
		return false
	}
	return slices.Contains(c.Likes, userID)
}

// BizNumberString formats the business number for display.
func (c Card) BizNumberString() string {
	return strconv.FormatInt(c.BizNumber, 10)
}

// CardInput is the payload sent when creating or updating a card.
type CardInput struct {
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle"`
	Description string       `json:"description"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Web         string       `json:"web"`
	Image       Image        `json:"image"`
	Address     AddressInput `json:"address"`
}

// AddressInput is the outgoing form of Address.
type AddressInput struct {
	State       string `json:"state"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Zip         string `json:"zip"`
}

// InputFromCard pre-fills a CardInput from an existing card (edit form).
func InputFromCard(c Card) CardInput {
	return CardInput{
		Title:       c.Title,
		Subtitle:    c.Subtitle,
		Description: c.Description,
		Phone:       c.Phone,
		Email:       c.Email,
		Web:         c.Web,
		Image:       c.Image,
		Address:     AddressInputFrom(c.Address),
	}
}

// AddressInputFrom converts a decoded address into its outgoing form.
func AddressInputFrom(a Address) AddressInput {
	return AddressInput{
		State:       a.State,
		Country:     a.Country,
		City:        a.City,
		Street:      a.Street,
		HouseNumber: a.HouseNumber.String(),
		Zip:         a.Zip.String(),
	}
}
