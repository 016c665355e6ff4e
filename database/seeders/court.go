package seeders

import (
	"errors"

	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedCourts crea las canchas iniciales del complejo si no existen.
func SeedCourts(db *gorm.DB) error {
	courtsToSeed := []models.Court{
		{Name: "Cancha 1", Location: "Planta baja", Description: "Cancha techada de pádel", Active: true},
		{Name: "Cancha 2", Location: "Planta baja", Description: "Cancha techada de pádel", Active: true},
		{Name: "Cancha 3", Location: "Terraza", Description: "Cancha al aire libre", Active: true},
	}

	for _, courtToSeed := range courtsToSeed {
		var existing models.Court
		result := db.Where("name = ?", courtToSeed.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("La cancha '%s' ya existe, se omite.", courtToSeed.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Error al verificar la cancha",
				zap.String("name", courtToSeed.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(&courtToSeed).Error; err != nil {
			configslog.Log.Error("No se pudo crear la cancha",
				zap.String("name", courtToSeed.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Cancha '%s' creada (ID: %d).", courtToSeed.Name, courtToSeed.ID)
	}
	return nil
}
