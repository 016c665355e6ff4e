package models

// User es un usuario administrativo del dashboard. El agendador público
// no requiere cuenta: las citas llevan solo el nombre del cliente.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	IsSystem     bool   `gorm:"default:false" json:"is_system"`
}
