package validation

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bcard/internal/domain"
)

// LoginForm is the login page form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,strongpassword"`
}

// BindLogin reads a LoginForm from the request.
func BindLogin(c echo.Context) LoginForm {
	return LoginForm{
		Email:    value(c, "email"),
		Password: c.FormValue("password"),
	}
}

// Credentials converts the form into the API payload.
func (f LoginForm) Credentials() domain.Credentials {
	return domain.Credentials{Email: f.Email, Password: f.Password}
}

// RegisterForm is the registration page form.
type RegisterForm struct {
	First       string `form:"first" validate:"required,min=2,max=256"`
	Middle      string `form:"middle" validate:"omitempty,min=2,max=256"`
	Last        string `form:"last" validate:"required,min=2,max=256"`
	Phone       string `form:"phone" validate:"required,ilphone"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,strongpassword"`
	ImageURL    string `form:"imageUrl" validate:"omitempty,http_url,min=14"`
	ImageAlt    string `form:"imageAlt" validate:"omitempty,min=2,max=256"`
	State       string `form:"state" validate:"omitempty,min=2,max=256"`
	Country     string `form:"country" validate:"required,min=2,max=256"`
	City        string `form:"city" validate:"required,min=2,max=256"`
	Street      string `form:"street" validate:"required,min=2,max=256"`
	HouseNumber string `form:"houseNumber" validate:"required,min=1,max=256"`
	Zip         string `form:"zip" validate:"required,min=2,max=256"`
	IsBusiness  bool   `form:"isBusiness"`
}

// BindRegister reads a RegisterForm from the request.
func BindRegister(c echo.Context) RegisterForm {
	return RegisterForm{
		First:       value(c, "first"),
		Middle:      value(c, "middle"),
		Last:        value(c, "last"),
		Phone:       value(c, "phone"),
		Email:       value(c, "email"),
		Password:    c.FormValue("password"),
		ImageURL:    value(c, "imageUrl"),
		ImageAlt:    value(c, "imageAlt"),
		State:       value(c, "state"),
		Country:     value(c, "country"),
		City:        value(c, "city"),
		Street:      value(c, "street"),
		HouseNumber: value(c, "houseNumber"),
		Zip:         value(c, "zip"),
		IsBusiness:  checked(c, "isBusiness"),
	}
}

// Input converts the form into the API payload.
func (f RegisterForm) Input() domain.RegisterInput {
	return domain.RegisterInput{
		Name:       domain.Name{First: f.First, Middle: f.Middle, Last: f.Last},
		Phone:      f.Phone,
		Email:      f.Email,
		Password:   f.Password,
		Image:      domain.Image{URL: f.ImageURL, Alt: f.ImageAlt},
		Address:    addressInput(f.State, f.Country, f.City, f.Street, f.HouseNumber, f.Zip),
		IsBusiness: f.IsBusiness,
	}
}

// ProfileForm is the profile edit form. Passwords are not editable here;
// unlike registration, the image and state are required.
type ProfileForm struct {
	First       string `form:"first" validate:"required,min=2,max=256"`
	Middle      string `form:"middle" validate:"omitempty,min=2,max=256"`
	Last        string `form:"last" validate:"required,min=2,max=256"`
	Phone       string `form:"phone" validate:"required,ilphone"`
	Email       string `form:"email" validate:"required,email"`
	ImageURL    string `form:"imageUrl" validate:"required,http_url,min=14"`
	ImageAlt    string `form:"imageAlt" validate:"required,min=2,max=256"`
	State       string `form:"state" validate:"required,min=2,max=256"`
	Country     string `form:"country" validate:"required,min=2,max=256"`
	City        string `form:"city" validate:"required,min=2,max=256"`
	Street      string `form:"street" validate:"required,min=2,max=256"`
	HouseNumber string `form:"houseNumber" validate:"required,min=2,max=256"`
	Zip         string `form:"zip" validate:"required,min=2,max=256"`
}

// BindProfile reads a ProfileForm from the request.
func BindProfile(c echo.Context) ProfileForm {
	return ProfileForm{
		First:       value(c, "first"),
		Middle:      value(c, "middle"),
		Last:        value(c, "last"),
		Phone:       value(c, "phone"),
		Email:       value(c, "email"),
		ImageURL:    value(c, "imageUrl"),
		ImageAlt:    value(c, "imageAlt"),
		State:       value(c, "state"),
		Country:     value(c, "country"),
		City:        value(c, "city"),
		Street:      value(c, "street"),
		HouseNumber: value(c, "houseNumber"),
		Zip:         value(c, "zip"),
	}
}

// ProfileFormFrom pre-fills the form from a profile payload.
func ProfileFormFrom(in domain.ProfileInput) ProfileForm {
	return ProfileForm{
		First:       in.Name.First,
		Middle:      in.Name.Middle,
		Last:        in.Name.Last,
		Phone:       in.Phone,
		Email:       in.Email,
		ImageURL:    in.Image.URL,
		ImageAlt:    in.Image.Alt,
		State:       in.Address.State,
		Country:     in.Address.Country,
		City:        in.Address.City,
		Street:      in.Address.Street,
		HouseNumber: in.Address.HouseNumber,
		Zip:         in.Address.Zip,
	}
}

// Input converts the form into the API payload.
func (f ProfileForm) Input() domain.ProfileInput {
	return domain.ProfileInput{
		Name:    domain.Name{First: f.First, Middle: f.Middle, Last: f.Last},
		Phone:   f.Phone,
		Email:   f.Email,
		Image:   domain.Image{URL: f.ImageURL, Alt: f.ImageAlt},
		Address: addressInput(f.State, f.Country, f.City, f.Street, f.HouseNumber, f.Zip),
	}
}

// CardForm is the create/edit card form.
type CardForm struct {
	Title       string `form:"title" validate:"required,min=2,max=256"`
	Subtitle    string `form:"subtitle" validate:"required,min=2,max=256"`
	Description string `form:"description" validate:"omitempty,max=1024"`
	Phone       string `form:"phone" validate:"required,min=9,max=11"`
	Email       string `form:"email" validate:"omitempty,email"`
	Web         string `form:"web" validate:"omitempty,http_url"`
	ImageURL    string `form:"imageUrl" validate:"required,http_url"`
	ImageAlt    string `form:"imageAlt" validate:"omitempty,max=256"`
	State       string `form:"state"`
	Country     string `form:"country" validate:"required"`
	City        string `form:"city" validate:"required"`
	Street      string `form:"street" validate:"required"`
	HouseNumber string `form:"houseNumber"`
	Zip         string `form:"zip"`
}

// BindCard reads a CardForm from the request.
func BindCard(c echo.Context) CardForm {
	return CardForm{
		Title:       value(c, "title"),
		Subtitle:    value(c, "subtitle"),
		Description: value(c, "description"),
		Phone:       value(c, "phone"),
		Email:       value(c, "email"),
		Web:         value(c, "web"),
		ImageURL:    value(c, "imageUrl"),
		ImageAlt:    value(c, "imageAlt"),
		State:       value(c, "state"),
		Country:     value(c, "country"),
		City:        value(c, "city"),
		Street:      value(c, "street"),
		HouseNumber: value(c, "houseNumber"),
		Zip:         value(c, "zip"),
	}
}

// CardFormFrom pre-fills the form from a card payload.
func CardFormFrom(in domain.CardInput) CardForm {
	return CardForm{
		Title:       in.Title,
		Subtitle:    in.Subtitle,
		Description: in.Description,
		Phone:       in.Phone,
		Email:       in.Email,
		Web:         in.Web,
		ImageURL:    in.Image.URL,
		ImageAlt:    in.Image.Alt,
		State:       in.Address.State,
		Country:     in.Address.Country,
		City:        in.Address.City,
		Street:      in.Address.Street,
		HouseNumber: in.Address.HouseNumber,
		Zip:         in.Address.Zip,
	}
}

// Input converts the form into the API payload.
func (f CardForm) Input() domain.CardInput {
	return domain.CardInput{
		Title:       f.Title,
		Subtitle:    f.Subtitle,
		Description: f.Description,
		Phone:       f.Phone,
		Email:       f.Email,
		Web:         f.Web,
		Image:       domain.Image{URL: f.ImageURL, Alt: f.ImageAlt},
		Address:     addressInput(f.State, f.Country, f.City, f.Street, f.HouseNumber, f.Zip),
	}
}

func addressInput(state, country, city, street, houseNumber, zip string) domain.AddressInput {
	return domain.AddressInput{
		State:       state,
		Country:     country,
		City:        city,
		Street:      street,
		HouseNumber: houseNumber,
		Zip:         zip,
	}
}

func value(c echo.Context, name string) string {
	return strings.TrimSpace(c.FormValue(name))
}

func checked(c echo.Context, name string) bool {
	switch c.FormValue(name) {
	case "on", "true", "1":
		return true
	}
	return false
}
