// Package site holds the static content of the marketing site that the build
// needs: the service catalogue and the icons it refers to.
package site

import "slices"

// Icon is a renderable icon. Name matches the icon key used by the page
// components; Glyph is its terminal rendering.
type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Label string `json:"label"`
}

// FallbackIcon is used for icon keys missing from the table.
var FallbackIcon = Icon{Name: "Shield", Glyph: "🛡", Label: "Security"}

var icons = map[string]Icon{
	"Camera":      {Name: "Camera", Glyph: "📷", Label: "Camera"},
	"Bell":        {Name: "Bell", Glyph: "🔔", Label: "Alarm bell"},
	"Zap":         {Name: "Zap", Glyph: "⚡", Label: "Electric fence"},
	"Fingerprint": {Name: "Fingerprint", Glyph: "🔐", Label: "Access control"},
	"Phone":       {Name: "Phone", Glyph: "📞", Label: "Intercom"},
	"Wrench":      {Name: "Wrench", Glyph: "🔧", Label: "Maintenance"},
	"Shield":      FallbackIcon,
}

// LookupIcon returns the icon registered under name.
func LookupIcon(name string) (Icon, bool) {
	icon, ok := icons[name]
	return icon, ok
}

// IconFor returns the icon registered under name, or FallbackIcon.
func IconFor(name string) Icon {
	if icon, ok := icons[name]; ok {
		return icon
	}
	return FallbackIcon
}

// IconNames returns the registered icon names in sorted order.
func IconNames() []string {
	names := make([]string, 0, len(icons))
	for name := range icons {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
