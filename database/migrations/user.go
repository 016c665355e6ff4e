package migrations

import (
	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrando tabla users...")
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("Fallo la migración de users", zap.Error(err))
		return err
	}
	return nil
}
