package icons

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	IDHome:      "house",
	IDInvoices:  "files",
	IDCustomers: "users",
	IDSignOut:   "log-out",
}

var lucideSymbolBodies = map[string]string{
	"house": `<path d="M15 21v-8a1 1 0 0 0-1-1h-4a1 1 0 0 0-1 1v8"/>` +
		`<path d="M3 10a2 2 0 0 1 .709-1.528l7-5.999a2 2 0 0 1 2.582 0l7 5.999A2 2 0 0 1 21 10v9a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z"/>`,
	"files": `<path d="M20 7h-3a2 2 0 0 1-2-2V2"/>` +
		`<path d="M9 18a2 2 0 0 1-2-2V4a2 2 0 0 1 2-2h7l4 4v10a2 2 0 0 1-2 2Z"/>` +
		`<path d="M3 7.6v12.8A1.6 1.6 0 0 0 4.6 22h9.8"/>`,
	"users": `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/>` +
		`<circle cx="9" cy="7" r="4"/>` +
		`<path d="M22 21v-2a4 4 0 0 0-3-3.87"/>` +
		`<path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"log-out": `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/>` +
		`<polyline points="16 17 21 12 16 7"/>` +
		`<line x1="21" x2="9" y1="12" y2="12"/>`,
	"sparkle": `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/>`,
}

var lucideSpriteOrder = []string{"house", "files", "users", "log-out", "sparkle"}

var lucideSprite = buildLucideSprite()

// LucideName returns the Lucide icon name for a core icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "sparkle"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for core Lucide icons.
func LucideSprite() string {
	return lucideSprite
}

func buildLucideSprite() string {
	sprite := `<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">`
	for _, name := range lucideSpriteOrder {
		sprite += `<symbol id="` + LucideSymbolID(name) + `" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">` +
			lucideSymbolBodies[name] + `</symbol>`
	}
	return sprite + `</svg>`
}
