package migrations

import (
	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCourtsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabla courts...")
	if err := db.AutoMigrate(&models.Court{}); err != nil {
		configslog.Log.Error("Fallo la migración de courts", zap.Error(err))
		return err
	}
	return nil
}
