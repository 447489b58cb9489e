package database

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/develop-y-minami/v-spa/internal/models"
)

// SeedRoleCodes inserts the fixed role lookup rows. The user screens expect
// id 1 (一般) and id 2 (管理者) to exist on a fresh database.
func SeedRoleCodes(db *gorm.DB) {
	roleCodes := []models.RoleCode{
		{ID: 1, Name: "一般"},
		{ID: 2, Name: "管理者"},
	}

	log.Printf("🌱 Seeding %d RoleCodes...", len(roleCodes))
	for _, rc := range roleCodes {
		// UPSERT based on primary key to prevent duplicates on restart
		db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true, // If it exists, leave it alone.
		}).Create(&rc)
	}
}
