// Package format prints cards and users for the terminal.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/nfrund/bcard/internal/domain"
)

// CardsTable prints one card per row.
func CardsTable(out io.Writer, cards []domain.Card) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tTITLE\tPHONE\tCITY\tCARD NUMBER\tLIKES")
	fmt.Fprintln(w, "--\t-----\t-----\t----\t-----------\t-----")
	for _, c := range cards {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			c.ID,
			truncateString(c.Title, 30),
			c.Phone,
			orDash(c.Address.City),
			c.BizNumberString(),
			len(c.Likes))
	}
}

// UsersTable prints one user per row.
func UsersTable(out io.Writer, users []domain.User) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tSTATUS")
	fmt.Fprintln(w, "--\t----\t-----\t-----\t------")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			u.ID,
			truncateString(u.Name.Full(), 30),
			u.Email,
			orDash(u.Phone),
			u.Status())
	}
}

// Card prints every field of one card.
func Card(out io.Writer, c domain.Card) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Title:\t%s\n", c.Title)
	fmt.Fprintf(w, "Subtitle:\t%s\n", c.Subtitle)
	if c.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", c.Description)
	}
	fmt.Fprintf(w, "Phone:\t%s\n", c.Phone)
	fmt.Fprintf(w, "Email:\t%s\n", orDash(c.Email))
	fmt.Fprintf(w, "Web:\t%s\n", orDash(c.Web))
	fmt.Fprintf(w, "Address:\t%s\n", Address(c.Address))
	fmt.Fprintf(w, "Card Number:\t%s\n", c.BizNumberString())
	fmt.Fprintf(w, "Likes:\t%d\n", len(c.Likes))
}

// Address joins the non-empty address parts.
func Address(a domain.Address) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Street, a.HouseNumber.String(), a.City, a.State, a.Country, a.Zip.String()} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return orDash(strings.Join(parts, ", "))
}

// JSON prints v indented.
func JSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncateString shortens s to max runes, ending with "...".
func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
