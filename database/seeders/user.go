package seeders

import (
	"errors"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemUser crea el usuario administrador si todavía no existe. Las
// credenciales vienen del entorno para no dejar valores quemados.
func SeedSystemUser(db *gorm.DB) error {
	email := configs.GetEnv("ADMIN_EMAIL", "admin@cancha.link")
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if password == "" {
		configslog.SLog.Warn("ADMIN_PASSWORD no definido, se omite el seed del usuario administrador.")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("El usuario administrador '%s' ya existe, se omite.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Error al verificar el usuario administrador", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("No se pudo generar el hash del administrador", zap.Error(err))
		return err
	}

	user := models.User{
		Name:         configs.GetEnv("ADMIN_NAME", "Administrador"),
		Email:        email,
		PasswordHash: string(hash),
		IsSystem:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("No se pudo crear el usuario administrador", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Usuario administrador '%s' creado (ID: %d).", user.Email, user.ID)
	return nil
}
