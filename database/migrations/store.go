package migrations

import (
	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateStoreTables migra las tablas de la tienda: categorías, productos
// y facturación.
func MigrateStoreTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tablas de la tienda (categories, products, invoices)...")
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
	if err != nil {
		configslog.Log.Error("Fallo la migración de las tablas de la tienda", zap.Error(err))
		return err
	}
	return nil
}
