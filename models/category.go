package models

// Categorías reservadas: agrupan los bienes del inventario y las vistas
// del dashboard las buscan por este nombre exacto.
const (
	CategoryOwnGoods   = "BIENES PROPIOS"
	CategoryStateGoods = "BIENES DEL ESTADO"
)

// Category agrupa productos de la tienda.
type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name" form:"name"`
	Description string `gorm:"type:text" json:"description,omitempty" form:"description"`
}
