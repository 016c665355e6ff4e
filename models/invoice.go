package models

// Invoice es una factura de la tienda. El total debe coincidir con la
// suma de los subtotales de sus items; la validación vive en el servicio.
type Invoice struct {
	BaseModel
	CustomerName     string  `gorm:"type:varchar(150);not null" json:"customer_name" form:"customer_name"`
	CustomerEmail    string  `gorm:"type:varchar(150)" json:"customer_email,omitempty" form:"customer_email"`
	PaymentReference string  `gorm:"type:varchar(100)" json:"payment_reference,omitempty" form:"payment_reference"`
	Total            float64 `gorm:"type:numeric(12,2);not null" json:"total" form:"total"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// InvoiceItem es una línea de factura. ProductName y ProductDescription se
// copian del producto al momento de facturar para que la factura no cambie
// si el catálogo cambia después.
type InvoiceItem struct {
	BaseModel
	InvoiceID          uint    `gorm:"index;not null" json:"invoice_id"`
	ProductID          *uint   `gorm:"index" json:"product_id"`
	ProductName        string  `gorm:"type:varchar(150);not null" json:"product_name" form:"product_name"`
	ProductDescription string  `gorm:"type:text" json:"product_description,omitempty" form:"product_description"`
	Quantity           int     `gorm:"not null" json:"quantity" form:"quantity"`
	UnitPrice          float64 `gorm:"type:numeric(12,2);not null" json:"unit_price" form:"unit_price"`
	Subtotal           float64 `gorm:"type:numeric(12,2);not null" json:"subtotal" form:"subtotal"`
}
