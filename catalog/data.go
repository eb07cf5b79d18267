package catalog

import (
	"time"

	"github.com/moghost88/cozy-corner-goods/models"
)

// displayName maps a category id to its storefront label.
func displayName(category string) string {
	switch category {
	case "kitchen":
		return "Kitchen Items"
	case "cleaning":
		return "Cleaning Supplies"
	case "bedroom":
		return "Bedroom Items"
	default:
		return category
	}
}

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

// builtinProducts is the launch catalog of digital home-organization goods.
// Catalog order doubles as the "featured" sort order, so do not reorder.
func builtinProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Ultimate Kitchen Organization Guide",
			Description: "Transform your kitchen with 50+ organization tips, printable labels, and storage solutions.",
			Price:       12.99,
			Category:    "kitchen",
			Subcategory: "organization",
			Image:       "https://cdn.cozycornergoods.shop/products/kitchen-org.jpg",
			Creator:     "HomeStyle Pro",
			Rating:      4.9,
			Downloads:   2340,
			Featured:    true,
			Date:        date("2024-11-18"),
		},
		{
			ID:          "2",
			Name:        "Meal Prep Planner Bundle",
			Description: "Weekly meal planners, grocery lists, and 100+ recipe cards for efficient cooking.",
			Price:       19.99,
			Category:    "kitchen",
			Subcategory: "meal-prep",
			Image:       "https://cdn.cozycornergoods.shop/products/meal-prep.jpg",
			Creator:     "Chef Maria",
			Rating:      4.8,
			Downloads:   1890,
			Date:        date("2024-09-02"),
		},
		{
			ID:          "3",
			Name:        "Deep Clean Checklist System",
			Description: "Room-by-room cleaning schedules, checklists, and natural cleaning recipes.",
			Price:       8.99,
			Category:    "cleaning",
			Subcategory: "checklists",
			Image:       "https://cdn.cozycornergoods.shop/products/deep-clean.jpg",
			Creator:     "Clean Living Co",
			Rating:      4.7,
			Downloads:   3210,
			Featured:    true,
			Date:        date("2025-01-07"),
		},
		{
			ID:          "4",
			Name:        "Eco-Friendly Cleaning Guide",
			Description: "DIY natural cleaning products, zero-waste tips, and sustainable home care.",
			Price:       14.99,
			Category:    "cleaning",
			Subcategory: "eco",
			Image:       "https://cdn.cozycornergoods.shop/products/eco-clean.jpg",
			Creator:     "Green Home",
			Rating:      4.9,
			Downloads:   1567,
			Date:        date("2024-06-21"),
		},
		{
			ID:          "5",
			Name:        "Bedroom Sanctuary Blueprint",
			Description: "Sleep optimization guide, bedroom layout templates, and relaxation techniques.",
			Price:       16.99,
			Category:    "bedroom",
			Subcategory: "sleep",
			Image:       "https://cdn.cozycornergoods.shop/products/bedroom-sanctuary.jpg",
			Creator:     "Rest & Renew",
			Rating:      4.8,
			Downloads:   987,
			Date:        date("2025-02-14"),
		},
		{
			ID:          "6",
			Name:        "Closet Organization Masterclass",
			Description: "Wardrobe organization system, seasonal rotation guides, and capsule wardrobe templates.",
			Price:       22.99,
			Category:    "bedroom",
			Subcategory: "closet",
			Image:       "https://cdn.cozycornergoods.shop/products/closet-masterclass.jpg",
			Creator:     "Style Sorted",
			Rating:      4.6,
			Downloads:   2100,
			Featured:    true,
			Date:        date("2024-12-01"),
		},
		{
			ID:          "7",
			Name:        "Smart Kitchen Gadget Guide",
			Description: "Reviews and how-to guides for modern kitchen tools and appliances.",
			Price:       9.99,
			Category:    "kitchen",
			Subcategory: "gadgets",
			Image:       "https://cdn.cozycornergoods.shop/products/gadget-guide.jpg",
			Creator:     "Tech Kitchen",
			Rating:      4.5,
			Downloads:   1234,
			// Listed before launch dates were tracked; sorts as oldest under "newest".
		},
		{
			ID:          "8",
			Name:        "Laundry Room Revolution",
			Description: "Stain removal guide, fabric care tips, and laundry room organization hacks.",
			Price:       11.99,
			Category:    "cleaning",
			Subcategory: "laundry",
			Image:       "https://cdn.cozycornergoods.shop/products/laundry.jpg",
			Creator:     "Clean Living Co",
			Rating:      4.7,
			Downloads:   1876,
			Date:        date("2024-10-11"),
		},
		{
			ID:          "9",
			Name:        "Pantry Label Starter Pack",
			Description: "120 printable pantry labels with matching spice jar minis and a sizing cheat sheet.",
			Price:       6.99,
			Category:    "kitchen",
			Subcategory: "organization",
			Image:       "https://cdn.cozycornergoods.shop/products/pantry-labels.jpg",
			Creator:     "HomeStyle Pro",
			Rating:      4.4,
			Downloads:   4102,
			Date:        date("2025-03-30"),
		},
		{
			ID:          "10",
			Name:        "Seasonal Bedding Swap Guide",
			Description: "Storage maps, washing schedules, and a duvet buying guide for every season.",
			Price:       7.99,
			Category:    "bedroom",
			Subcategory: "sleep",
			Image:       "https://cdn.cozycornergoods.shop/products/bedding-swap.jpg",
			Creator:     "Rest & Renew",
			Rating:      4.3,
			Downloads:   654,
			Date:        date("2024-08-19"),
		},
	}
}
