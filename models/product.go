package models

// Product es un artículo vendible de la tienda.
type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(150);not null" json:"name" form:"name"`
	Description string  `gorm:"type:text" json:"description,omitempty" form:"description"`
	Price       float64 `gorm:"type:numeric(12,2);default:0.00" json:"price" form:"price"`
	CategoryID  *uint   `gorm:"index" json:"category_id" form:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`
}
