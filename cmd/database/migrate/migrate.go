package migration

import (
	"fmt"
	"log"

	"Gardener-Assistant-Backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []interface{}{
		&entities.User{},
		&entities.Device{},
		&entities.Product{},
		&entities.Order{},
		&entities.OrderItem{},
		&entities.Field{},
		&entities.Zone{},
		&entities.DroneBooking{},
		&entities.ChatSession{},
		&entities.ChatMessage{},
		&entities.PlantScan{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
