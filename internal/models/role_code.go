package models

// RoleCode is a fixed role lookup row (1 = 一般, 2 = 管理者).
// Read-only from the API's point of view; rows come from the seeder.
type RoleCode struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}
