package sitegen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/domain"
)

// systemPrompt mandates the page structure, the styling framework, the image
// placeholder scheme, and raw-markup-only output.
const systemPrompt = "**Objective:** Create a compact, professional, single-page HTML website.\n" +
	"**Output:** Raw HTML only. No markdown.\n" +
	"**Tech:** Tailwind CSS via CDN (`<script src=\"https://cdn.tailwindcss.com\"></script>`).\n" +
	"**Content:** MUST include a Hero section, a 3-card Features/Services section (with simple inline SVG icons), and a simple Footer.\n" +
	"**Images:** Use Unsplash Source (`https://source.unsplash.com/random/800x600/?<query>`).\n" +
	"**Style:** Use user-provided style and colors. Keep it concise."

func buildUserPrompt(businessName, businessType string, variant domain.DesignVariant) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Generate a website with a %q design style and a %q color palette for the following business:\n\n", variant.Style, variant.ColorTheme)
	fmt.Fprintf(sb, "Business Name: %s\nBusiness Type: %s\n\n", businessName, businessType)
	fmt.Fprintf(sb, "Use this Logo URL: %s\n\n", placeholderLogoURL(businessName))
	sb.WriteString("Generate the complete HTML code following all instructions.")
	return sb.String()
}

// placeholderLogoURL derives a deterministic placeholder logo for the
// business. Whitespace runs collapse to '+' so the name is URL-safe.
func placeholderLogoURL(businessName string) string {
	titled := cases.Title(language.Und).String(strings.TrimSpace(businessName))
	text := strings.Join(strings.Fields(titled), "+")
	return "https://placehold.co/150x50/FFFFFF/000000?text=" + text
}
