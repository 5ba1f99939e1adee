package main

import (
	"fmt"
	"log"
	"os"

	"lab-inventory-backend/internal/config"
	"lab-inventory-backend/internal/database"
	"lab-inventory-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ComponentData directly matches the seed file schema
type ComponentData struct {
	Name              string  `yaml:"name"`
	Quantity          int     `yaml:"quantity"`
	Location          string  `yaml:"location,omitempty"`
	UnitPrice         float64 `yaml:"unit_price,omitempty"`
	LowStockThreshold int     `yaml:"low_stock_threshold,omitempty"`
}

type SeedFile struct {
	Components []ComponentData `yaml:"components"`
}

// Loads the component catalog from a YAML file, creating missing components
// and updating descriptive fields of existing ones. Stock quantities of
// existing components are left alone: the borrow/return workflow owns them.
func main() {
	path := "scripts/initial_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{LogLevel: logger.Warn})
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	created, updated := 0, 0
	for _, data := range seed.Components {
		if data.Name == "" {
			log.Printf("skipping component with empty name")
			continue
		}
		if data.Quantity < 0 {
			log.Printf("skipping %q: negative quantity", data.Name)
			continue
		}

		var existing models.Component
		err := db.First(&existing, "name = ?", data.Name).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			component := models.Component{
				Name:              data.Name,
				Quantity:          data.Quantity,
				Location:          data.Location,
				UnitPrice:         data.UnitPrice,
				LowStockThreshold: data.LowStockThreshold,
			}
			if err := db.Create(&component).Error; err != nil {
				log.Fatalf("create %q: %v", data.Name, err)
			}
			created++
		case err != nil:
			log.Fatalf("lookup %q: %v", data.Name, err)
		default:
			existing.Location = data.Location
			existing.UnitPrice = data.UnitPrice
			existing.LowStockThreshold = data.LowStockThreshold
			if err := db.Save(&existing).Error; err != nil {
				log.Fatalf("update %q: %v", data.Name, err)
			}
			updated++
		}
	}

	fmt.Printf("seed complete: %d created, %d updated\n", created, updated)
}
