package pages

import (
	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/validation"
	"github.com/nfrund/bcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Login is the login form.
func Login(f validation.LoginForm, errs validation.FieldErrors) g.Node {
	return h.Section(
		h.Class("page narrow"),
		h.H1(g.Text("Login")),
		g.El("form",
			h.Method("post"),
			h.Action("/login"),
			components.Input(components.Field{Label: "Email", Name: "email", Type: "email", Value: f.Email, Error: errs["email"], Required: true}),
			components.Input(components.Field{Label: "Password", Name: "password", Type: "password", Error: errs["password"], Required: true}),
			components.SubmitRow("Login", "/"),
		),
		h.P(g.Text("No account yet? "), h.A(h.Href("/register"), g.Text("Sign up"))),
	)
}

// Register is the sign-up form.
func Register(f validation.RegisterForm, errs validation.FieldErrors) g.Node {
	return h.Section(
		h.Class("page"),
		h.H1(g.Text("Register")),
		g.El("form",
			h.Method("post"),
			h.Action("/register"),
			h.Class("form-grid"),
			nameFields(f.First, f.Middle, f.Last, errs),
			components.Input(components.Field{Label: "Phone", Name: "phone", Type: "tel", Value: f.Phone, Error: errs["phone"], Required: true}),
			components.Input(components.Field{Label: "Email", Name: "email", Type: "email", Value: f.Email, Error: errs["email"], Required: true}),
			components.Input(components.Field{Label: "Password", Name: "password", Type: "password", Error: errs["password"], Required: true}),
			imageFields(f.ImageURL, f.ImageAlt, errs),
			addressFields(f.State, f.Country, f.City, f.Street, f.HouseNumber, f.Zip, errs),
			components.Checkbox("Signup as business", "isBusiness", f.IsBusiness),
			components.SubmitRow("Register", "/"),
		),
	)
}

// Profile shows the user's account with an edit form and the delete action.
func Profile(u domain.User, f validation.ProfileForm, errs validation.FieldErrors) g.Node {
	return h.Section(
		h.Class("page profile"),
		h.H1(g.Text("Profile")),
		h.Div(
			h.Class("profile-summary"),
			g.If(u.Image.URL != "", h.Img(h.Class("avatar"), h.Src(components.SafeURL(u.Image.URL)), h.Alt(u.Image.Alt))),
			h.H2(g.Text(u.Name.Full())),
			h.P(g.Text(u.Email)),
			h.P(h.Class("status"), g.Text(u.Status())),
		),
		g.El("form",
			h.Method("post"),
			h.Action("/profile"),
			h.Class("form-grid"),
			nameFields(f.First, f.Middle, f.Last, errs),
			components.Input(components.Field{Label: "Phone", Name: "phone", Type: "tel", Value: f.Phone, Error: errs["phone"], Required: true}),
			components.Input(components.Field{Label: "Email", Name: "email", Type: "email", Value: f.Email, Error: errs["email"], Required: true}),
			imageFields(f.ImageURL, f.ImageAlt, errs),
			addressFields(f.State, f.Country, f.City, f.Street, f.HouseNumber, f.Zip, errs),
			components.SubmitRow("Save", ""),
		),
		g.El("form",
			h.Class("danger-zone"),
			h.Method("post"),
			h.Action("/profile/delete"),
			hx.Confirm("Are you sure you want to delete your account? This cannot be undone."),
			h.Button(h.Type("submit"), h.Class("btn danger"), g.Text("Delete Account")),
		),
	)
}

func nameFields(first, middle, last string, errs validation.FieldErrors) g.Node {
	return g.Group{
		components.Input(components.Field{Label: "First Name", Name: "first", Value: first, Error: errs["first"], Required: true}),
		components.Input(components.Field{Label: "Middle Name", Name: "middle", Value: middle, Error: errs["middle"]}),
		components.Input(components.Field{Label: "Last Name", Name: "last", Value: last, Error: errs["last"], Required: true}),
	}
}

func imageFields(url, alt string, errs validation.FieldErrors) g.Node {
	return g.Group{
		components.Input(components.Field{Label: "Image URL", Name: "imageUrl", Type: "url", Value: url, Error: errs["imageUrl"]}),
		components.Input(components.Field{Label: "Image Alt", Name: "imageAlt", Value: alt, Error: errs["imageAlt"]}),
	}
}

func addressFields(state, country, city, street, houseNumber, zip string, errs validation.FieldErrors) g.Node {
	return g.Group{
		components.Input(components.Field{Label: "State", Name: "state", Value: state, Error: errs["state"]}),
		components.Input(components.Field{Label: "Country", Name: "country", Value: country, Error: errs["country"], Required: true}),
		components.Input(components.Field{Label: "City", Name: "city", Value: city, Error: errs["city"], Required: true}),
		components.Input(components.Field{Label: "Street", Name: "street", Value: street, Error: errs["street"], Required: true}),
		components.Input(components.Field{Label: "House Number", Name: "houseNumber", Value: houseNumber, Error: errs["houseNumber"], Required: true}),
		components.Input(components.Field{Label: "Zip", Name: "zip", Value: zip, Error: errs["zip"], Required: true}),
	}
}
