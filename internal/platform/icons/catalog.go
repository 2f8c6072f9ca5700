// Package icons defines the icon identifiers used by the dashboard.
//
// The catalog maps stable icon identifiers to human-readable labels so
// components can name an icon without dictating how it is drawn.
package icons

import "strings"

// ID is a stable icon identifier.
type ID string

const (
	IDHome      ID = "home"
	IDInvoices  ID = "invoices"
	IDCustomers ID = "customers"
	IDSignOut   ID = "sign_out"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          IDHome,
		Name:        "Home",
		Description: "Dashboard overview.",
	},
	{
		ID:          IDInvoices,
		Name:        "Invoices",
		Description: "Invoice listings and documents.",
	},
	{
		ID:          IDCustomers,
		Name:        "Customers",
		Description: "Customer listings.",
	},
	{
		ID:          IDSignOut,
		Name:        "Sign Out",
		Description: "End the current session.",
	},
}

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon ID | Name | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
