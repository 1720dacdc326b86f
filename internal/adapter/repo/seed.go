package repo

import (
	"time"

	"server/internal/domain"
)

// DemoOrders returns the fixture orders used to pre-populate local
// environments so the admin panel has something to show.
func DemoOrders() []domain.Order {
	now := time.Now().UTC()
	return []domain.Order{
		{
			ID:            "ord1001",
			CreatedAt:     now.Add(-3 * 24 * time.Hour),
			BusinessName:  "Innovate Tech Solutions",
			BusinessType:  "IT Consulting",
			Contact:       domain.Contact{Phone: "9876543210", Email: "innovate@tech.com"},
			SelectedStyle: "Tech & Futuristic",
			SelectedHTML:  `<html><head><title>Innovate Tech</title><script src="https://cdn.tailwindcss.com"></script></head><body class="bg-gray-900 text-white p-10"><h1 class="text-4xl text-cyan-400">Innovate Tech Solutions</h1><p class="text-lg mt-4">This is the Tech & Futuristic design chosen by the client. Order ID: ord1001</p><a href="#" class="inline-block mt-6 px-4 py-2 bg-cyan-600 rounded">View Live Site</a></body></html>`,
			PaymentStatus: domain.PaymentStatusAdvancePaid,
			OrderStatus:   domain.OrderStatusNew,
			AdvanceAmount: 199,
			FinalAmount:   3999,
		},
		{
			ID:            "ord1002",
			CreatedAt:     now.Add(-7 * 24 * time.Hour),
			BusinessName:  "The Green Cafe",
			BusinessType:  "Organic Restaurant",
			Contact:       domain.Contact{Phone: "8877665544", Email: "green@cafe.com"},
			SelectedStyle: "Natural & Earthy",
			SelectedHTML:  `<html><head><title>Green Cafe</title><script src="https://cdn.tailwindcss.com"></script></head><body class="bg-green-50 text-green-900 p-10"><h1 class="text-4xl text-green-700">The Green Cafe</h1><p class="text-lg mt-4">This is the Natural & Earthy design. Order ID: ord1002</p><a href="#" class="inline-block mt-6 px-4 py-2 bg-green-500 text-white rounded">Visit Site</a></body></html>`,
			PaymentStatus: domain.PaymentStatusFullPaid,
			OrderStatus:   domain.OrderStatusDelivered,
			AdvanceAmount: 199,
			FinalAmount:   3999,
			DeliveryURL:   "https://thegreencafe.live",
		},
		{
			ID:            "ord1003",
			CreatedAt:     now.Add(-24 * time.Hour),
			BusinessName:  "Modern Home Decor",
			BusinessType:  "E-commerce Store",
			Contact:       domain.Contact{Phone: "7766554433", Email: "sales@modernhome.com"},
			SelectedStyle: "Modern & Clean",
			SelectedHTML:  `<html><head><title>Modern Home</title><script src="https://cdn.tailwindcss.com"></script></head><body class="bg-white text-gray-800 p-10"><h1 class="text-4xl text-gray-800">Modern Home Decor</h1><p class="text-lg mt-4">This is the Modern & Clean design. Order ID: ord1003</p></body></html>`,
			PaymentStatus: domain.PaymentStatusAdvancePaid,
			OrderStatus:   domain.OrderStatusContacted,
			AdvanceAmount: 199,
			FinalAmount:   3999,
		},
	}
}
