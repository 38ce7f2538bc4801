package seed

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"homekitchen/internal/models"
	"homekitchen/internal/repositories"
)

type sampleItem struct {
	name        string
	description string
	price       string
	category    string
	image       string
}

var sampleMenu = []sampleItem{
	{"Samosas", "Crispy pastry filled with spiced potatoes and peas", "8.99", "Starters & Snacks", "🍛"},
	{"Chicken 65", "Spicy deep-fried chicken with curry leaves", "12.99", "Starters & Snacks", "🍗"},
	{"Paneer 65", "Spicy deep-fried paneer with curry leaves", "10.99", "Starters & Snacks", "🧀"},
	{"Butter Chicken", "Tender chicken in rich tomato and butter gravy", "18.99", "Main Dishes", "🍗"},
	{"Biryani", "Fragrant rice with tender meat and aromatic spices", "22.99", "Main Dishes", "🍚"},
	{"Rogan Josh", "Tender lamb in aromatic Kashmiri spices", "24.99", "Main Dishes", "🍖"},
	{"Matar Paneer", "Fresh peas and cottage cheese in tomato gravy", "16.99", "Main Dishes", "🥘"},
	{"Naan", "Soft leavened bread baked in tandoor", "3.99", "Breads", "🫓"},
	{"Roti", "Whole wheat flatbread", "2.99", "Breads", "🫓"},
	{"Garlic Naan", "Naan bread topped with garlic and herbs", "4.99", "Breads", "🫓"},
	{"Basmati Rice", "Fragrant long-grain rice", "4.99", "Sides", "🍚"},
	{"Jeera Rice", "Rice flavored with cumin seeds", "5.99", "Sides", "🍚"},
	{"Potato Curry", "Spiced potatoes in tomato gravy", "6.99", "Sides", "🥔"},
}

// Menu loads the sample menu when the table is empty.
func Menu(ctx context.Context, menuRepo repositories.MenuRepository) error {
	count, err := menuRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Menu data already exists, skipping initialization")
		return nil
	}

	for _, s := range sampleMenu {
		description := s.description
		image := s.image
		item := &models.MenuItem{
			Name:        s.name,
			Description: &description,
			Price:       decimal.RequireFromString(s.price),
			Category:    s.category,
			ImageURL:    &image,
			IsAvailable: true,
		}
		if err := menuRepo.Create(ctx, item); err != nil {
			return err
		}
	}

	log.Printf("Successfully initialized %d menu items", len(sampleMenu))
	return nil
}
