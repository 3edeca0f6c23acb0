package configs

import (
	"log"

	"canteen-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the staff account on first boot.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Canteen Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu loads a starter catalog so a fresh install is usable right away.
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{
			Name:            "Chicken Burger",
			Description:     "Juicy grilled chicken breast with lettuce, tomato, and mayo",
			Price:           8.99,
			Category:        entity.CategoryLunch,
			Image:           "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg",
			IsAvailable:     true,
			PreparationTime: 15,
		},
		{
			Name:            "Caesar Salad",
			Description:     "Fresh romaine lettuce with parmesan cheese and croutons",
			Price:           6.99,
			Category:        entity.CategoryLunch,
			Image:           "https://images.pexels.com/photos/1213710/pexels-photo-1213710.jpeg",
			IsAvailable:     true,
			PreparationTime: 8,
		},
		{
			Name:            "Pancakes",
			Description:     "Fluffy pancakes served with maple syrup and butter",
			Price:           5.99,
			Category:        entity.CategoryBreakfast,
			Image:           "https://images.pexels.com/photos/376464/pexels-photo-376464.jpeg",
			IsAvailable:     true,
			PreparationTime: 12,
		},
		{
			Name:            "Coffee",
			Description:     "Freshly brewed coffee",
			Price:           2.99,
			Category:        entity.CategoryBeverages,
			Image:           "https://images.pexels.com/photos/312418/pexels-photo-312418.jpeg",
			IsAvailable:     true,
			PreparationTime: 3,
		},
		{
			Name:            "Chocolate Cake",
			Description:     "Rich chocolate cake with chocolate frosting",
			Price:           4.99,
			Category:        entity.CategoryDesserts,
			Image:           "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg",
			IsAvailable:     true,
			PreparationTime: 5,
		},
		{
			Name:            "French Fries",
			Description:     "Crispy golden french fries",
			Price:           3.99,
			Category:        entity.CategorySnacks,
			Image:           "https://images.pexels.com/photos/1893556/pexels-photo-1893556.jpeg",
			IsAvailable:     true,
			PreparationTime: 10,
		},
	}

	if err := db.Create(&items).Error; err != nil {
		return err
	}
	log.Println("menu seeded:", len(items), "items")
	return nil
}
