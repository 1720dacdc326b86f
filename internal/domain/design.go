package domain

// DesignVariant is one (style, palette) combination from the fixed generation
// plan. Variants are generated and delivered strictly in plan order.
type DesignVariant struct {
	Style       string `json:"style"`
	ColorTheme  string `json:"colorTheme"`
	Description string `json:"description"`
}

// GeneratedSite is a completed mockup for one (job, variant) pair. Index is
// the 0-based position in the plan and travels on the wire so clients can
// reconstruct ordering under partial delivery.
type GeneratedSite struct {
	HTML    string        `json:"html"`
	Variant DesignVariant `json:"design"`
	Index   int           `json:"index"`
}
