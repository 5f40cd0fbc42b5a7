package pages

import (
	"github.com/nfrund/bcard/internal/validation"
	"github.com/nfrund/bcard/web/src/templates/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CardForm is the create and edit card page. action is where the form posts.
func CardForm(heading, action string, f validation.CardForm, errs validation.FieldErrors) g.Node {
	return h.Section(
		h.Class("page card-form"),
		h.H1(g.Text(heading)),
		g.If(f.ImageURL != "", h.Img(h.Class("preview"), h.Src(components.SafeURL(f.ImageURL)), h.Alt(f.ImageAlt))),
		g.El("form",
			h.Method("post"),
			h.Action(action),
			h.Class("form-grid"),
			components.Input(components.Field{Label: "Image URL", Name: "imageUrl", Type: "url", Value: f.ImageURL, Error: errs["imageUrl"], Required: true}),
			components.Input(components.Field{Label: "Image Alt", Name: "imageAlt", Value: f.ImageAlt, Error: errs["imageAlt"]}),
			components.Input(components.Field{Label: "Title", Name: "title", Value: f.Title, Error: errs["title"], Required: true}),
			components.Input(components.Field{Label: "Subtitle", Name: "subtitle", Value: f.Subtitle, Error: errs["subtitle"], Required: true}),
			components.TextArea(components.Field{Label: "Description", Name: "description", Value: f.Description, Error: errs["description"]}),
			components.Input(components.Field{Label: "Phone", Name: "phone", Type: "tel", Value: f.Phone, Error: errs["phone"], Required: true}),
			components.Input(components.Field{Label: "Email", Name: "email", Type: "email", Value: f.Email, Error: errs["email"]}),
			components.Input(components.Field{Label: "Website", Name: "web", Type: "url", Value: f.Web, Error: errs["web"]}),
			components.Input(components.Field{Label: "State", Name: "state", Value: f.State, Error: errs["state"]}),
			components.Input(components.Field{Label: "Country", Name: "country", Value: f.Country, Error: errs["country"], Required: true}),
			components.Input(components.Field{Label: "City", Name: "city", Value: f.City, Error: errs["city"], Required: true}),
			components.Input(components.Field{Label: "Street", Name: "street", Value: f.Street, Error: errs["street"], Required: true}),
			components.Input(components.Field{Label: "House Number", Name: "houseNumber", Value: f.HouseNumber, Error: errs["houseNumber"]}),
			components.Input(components.Field{Label: "Zip", Name: "zip", Value: f.Zip, Error: errs["zip"]}),
			components.SubmitRow("Save", "/my-cards"),
		),
	)
}
