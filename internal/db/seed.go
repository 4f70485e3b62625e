package db

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/babyzion/market/internal/models"
)

// Seed inserts the starter catalog when the products table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(seedProducts()).Error
}

func seedProducts() []models.Product {
	p := func(id, name, desc string, price float64, category, image string) models.Product {
		return models.Product{
			ID:          id,
			Name:        name,
			Description: desc,
			Price:       decimal.NewFromFloat(price),
			Category:    category,
			Image:       image,
			InStock:     true,
		}
	}

	return []models.Product{
		p("prod_001", "Organic Cotton Baby Blanket", "Soft, breathable blanket made from 100% organic cotton. Perfect for newborns.", 34.99, "Newborn Essentials", "https://images.unsplash.com/photo-1519689373023-dd07c7988603?w=400&h=400&fit=crop"),
		p("prod_002", "Muslin Swaddle Set (3-Pack)", "Breathable muslin swaddles in beautiful prints. Essential for every newborn.", 28.50, "Newborn Essentials", "https://images.unsplash.com/photo-1617479187759-37cda2ad2b5a?w=400&h=400&fit=crop"),
		p("prod_003", "Organic Teething Rings", "Set of 3 organic cotton teething rings. Safe, soothing, and washable.", 24.99, "Newborn Essentials", "https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?w=400&h=400&fit=crop"),
		p("prod_004", "Handcrafted Wooden Rattle", "Natural wood baby rattle, safe and eco-friendly. Great for sensory development.", 18.50, "Wooden Toys", "https://images.unsplash.com/photo-1580130732478-3ddc2f96f6e4?w=400&h=400&fit=crop"),
		p("prod_005", "Wooden Pull-Along Duck", "Classic wooden pull toy. Perfect for toddlers learning to walk.", 22.00, "Wooden Toys", "https://images.unsplash.com/photo-1587037577931-11f85e70daac?w=400&h=400&fit=crop"),
		p("prod_006", "Montessori Wooden Play Set", "Educational toy set promoting learning through play. Made from sustainable wood.", 42.00, "Educational Toys", "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400&h=400&fit=crop"),
		p("prod_007", "Cultural Lullaby Music Box", "Wooden music box playing traditional lullabies from around the world.", 32.00, "Educational Toys", "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400&h=400&fit=crop"),
		p("prod_008", "Eid Special Baby Outfit", "Beautiful handcrafted outfit for Eid celebrations. Includes matching accessories.", 48.00, "Cultural Baby Wear", "https://images.unsplash.com/photo-1515488042361-ee00e0ddd4e4?w=400&h=400&fit=crop"),
		p("prod_009", "African Print Baby Romper", "Vibrant African print romper. Comfortable, stylish, and celebrates culture.", 28.00, "Cultural Baby Wear", "https://images.unsplash.com/photo-1522771930-78848d9293e8?w=400&h=400&fit=crop"),
		p("prod_010", "Mom & Baby Matching Set", "Matching outfit set for mom and baby. Comfortable and stylish.", 78.00, "Mom & Baby Sets", "https://images.unsplash.com/photo-1566694271453-390536dd1f0d?w=400&h=400&fit=crop"),
		p("prod_011", "Nursing Pillow", "Ergonomic nursing pillow with removable, washable cover. Makes feeding comfortable.", 39.99, "Mom & Baby Sets", "https://images.unsplash.com/photo-1566694271453-390536dd1f0d?w=400&h=400&fit=crop"),
		p("prod_012", "Silicone Baby Feeding Set", "Complete feeding set: plate, bowl, spoon. BPA-free, dishwasher safe.", 29.99, "Feeding & Nursing", "https://images.unsplash.com/photo-1609220136736-443140cffec6?w=400&h=400&fit=crop"),
		p("prod_013", "Bamboo Baby Utensils", "Eco-friendly bamboo spoons and forks. Safe for babies and the environment.", 16.50, "Feeding & Nursing", "https://images.unsplash.com/photo-1609220136736-443140cffec6?w=400&h=400&fit=crop"),
	}
}
