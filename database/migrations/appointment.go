package migrations

import (
	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAppointmentsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabla appointments...")
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		configslog.Log.Error("Fallo la migración de appointments", zap.Error(err))
		return err
	}
	return nil
}
