package models

// Court es un recurso reservable (una cancha). Solo las canchas activas
// se ofrecen en el agendador público; las citas la referencian pero no
// son dueñas de ella.
type Court struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null" json:"name" form:"name"`
	Location    string `gorm:"type:varchar(200)" json:"location,omitempty" form:"location"`
	Description string `gorm:"type:text" json:"description,omitempty" form:"description"`
	Active      bool   `gorm:"default:true;index" json:"active" form:"active"`
}
