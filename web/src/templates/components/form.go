package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Field describes one form input.
type Field struct {
	Label    string
	Name     string
	Type     string
	Value    string
	Error    string
	Required bool
}

// Input renders a labelled input with its validation message.
func Input(f Field) g.Node {
	typ := f.Type
	if typ == "" {
		typ = "text"
	}
	return h.Div(
		h.Class("field"),
		g.El("label", g.Attr("for", f.Name), g.Text(f.Label), g.If(f.Required, g.Text(" *"))),
		h.Input(
			h.ID(f.Name),
			h.Name(f.Name),
			h.Type(typ),
			g.If(typ != "password", h.Value(f.Value)),
			g.If(f.Required, h.Required()),
			g.If(f.Error != "", h.Class("invalid")),
		),
		fieldError(f.Error),
	)
}

// TextArea renders a labelled textarea with its validation message.
func TextArea(f Field) g.Node {
	return h.Div(
		h.Class("field"),
		g.El("label", g.Attr("for", f.Name), g.Text(f.Label)),
		h.Textarea(h.ID(f.Name), h.Name(f.Name), g.Attr("rows", "4"), g.Text(f.Value)),
		fieldError(f.Error),
	)
}

// Checkbox renders a labelled checkbox.
func Checkbox(label, name string, checked bool) g.Node {
	return h.Div(
		h.Class("field checkbox"),
		g.El("label",
			h.Input(h.Type("checkbox"), h.Name(name), g.If(checked, h.Checked())),
			g.Text(" "+label),
		),
	)
}

// SubmitRow renders the form's submit button and an optional cancel link.
func SubmitRow(label, cancelHref string) g.Node {
	return h.Div(
		h.Class("form-actions"),
		h.Button(h.Type("submit"), h.Class("btn primary"), g.Text(label)),
		g.If(cancelHref != "", h.A(h.Class("btn"), h.Href(cancelHref), g.Text("Cancel"))),
	)
}

func fieldError(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return h.Small(h.Class("field-error"), g.Text(msg))
}
