package colour

import (
	"fmt"
	"strings"
)

// NeutralVariable is a fixed CSS custom property emitted after the palette roles.
type NeutralVariable struct {
	Name  string
	Value string
}

// NeutralVariables returns the neutral colour constants of the site theme.
func NeutralVariables() []NeutralVariable {
	return []NeutralVariable{
		{"--color-white", "#ffffff"},
		{"--color-black", "#000000"},
		{"--color-gray-50", "#f9fafb"},
		{"--color-gray-100", "#f3f4f6"},
		{"--color-gray-200", "#e5e7eb"},
		{"--color-gray-300", "#d1d5db"},
		{"--color-gray-400", "#9ca3af"},
		{"--color-gray-500", "#6b7280"},
		{"--color-gray-600", "#4b5563"},
		{"--color-gray-700", "#374151"},
		{"--color-gray-800", "#1f2937"},
		{"--color-gray-900", "#111827"},
	}
}

var roleComments = map[Role]string{
	RolePrimary:   "Primary Colors (Green - Technology)",
	RoleSecondary: "Secondary Colors (Blue - Corporate)",
	RoleTertiary:  "Tertiary Colors (Gray - Neutral)",
}

// CSSVariables renders the palette as CSS custom property declarations, ready
// to be pasted into a :root rule.
func CSSVariables(p *Palette) string {
	var sb strings.Builder
	sb.WriteString("\n")

	for role, v := range p.All() {
		fmt.Fprintf(&sb, "  /* %s */\n", roleComments[role])
		fmt.Fprintf(&sb, "  --color-%s: %s;\n", role, v.Main)
		fmt.Fprintf(&sb, "  --color-%s-light: %s;\n", role, v.Light)
		fmt.Fprintf(&sb, "  --color-%s-dark: %s;\n", role, v.Dark)
		sb.WriteString("\n")
	}

	sb.WriteString("  /* Neutral Colors */\n")
	for _, n := range NeutralVariables() {
		fmt.Fprintf(&sb, "  %s: %s;\n", n.Name, n.Value)
	}

	return sb.String()
}

// CSSRootRule wraps CSSVariables in a :root rule.
func CSSRootRule(p *Palette) string {
	return ":root {" + CSSVariables(p) + "}\n"
}
