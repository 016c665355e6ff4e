package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel se embebe en todos los modelos persistidos.
// DeletedAt habilita el borrado suave de GORM: las filas eliminadas
// desde el dashboard nunca vuelven a aparecer en las consultas normales.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
