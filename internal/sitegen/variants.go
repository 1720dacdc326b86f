package sitegen

import "server/internal/domain"

// Plan is the fixed, ordered list of design variants every job generates.
// Index order is part of the client contract: variant i is always delivered
// before variant i+1.
var Plan = []domain.DesignVariant{
	{
		Style:       "Modern & Clean",
		ColorTheme:  "White, Slate Gray, and Sky Blue",
		Description: "Minimalist and structured layout with cool tones.",
	},
	{
		Style:       "Elegant & Professional",
		ColorTheme:  "Off-white, Charcoal, and Gold",
		Description: "Sophisticated design ideal for high-end services.",
	},
	{
		Style:       "Natural & Earthy",
		ColorTheme:  "Beige, Forest Green, and Brown",
		Description: "Organic feel with warm colors for eco-friendly businesses.",
	},
	{
		Style:       "Bold & Vibrant",
		ColorTheme:  "Dark Gray, White, and Bright Red",
		Description: "High-impact, eye-catching design with strong contrast.",
	},
	{
		Style:       "Minimalist & Serene",
		ColorTheme:  "Light Gray, White, and a soft Sage Green",
		Description: "Calm and simple, focusing heavily on readability.",
	},
	{
		Style:       "Tech & Futuristic",
		ColorTheme:  "Deep Blue, Black, and Electric Cyan",
		Description: "Sleek, dark mode design for technology and SaaS.",
	},
}
