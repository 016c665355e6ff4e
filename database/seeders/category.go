package seeders

import (
	"errors"

	"cancha.link/configs/configslog"
	"cancha.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedReservedCategories crea las categorías reservadas del inventario si
// no existen. Las vistas de bienes las buscan por nombre exacto.
func SeedReservedCategories(db *gorm.DB) error {
	categoriesToSeed := []models.Category{
		{Name: models.CategoryOwnGoods, Description: "Bienes propios del complejo"},
		{Name: models.CategoryStateGoods, Description: "Bienes pertenecientes al estado"},
	}

	for _, categoryToSeed := range categoriesToSeed {
		var existing models.Category
		result := db.Where("name = ?", categoryToSeed.Name).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("La categoría '%s' ya existe, se omite.", categoryToSeed.Name)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Error al verificar la categoría",
				zap.String("name", categoryToSeed.Name), zap.Error(result.Error))
			return result.Error
		}

		if err := db.Create(&categoryToSeed).Error; err != nil {
			configslog.Log.Error("No se pudo crear la categoría",
				zap.String("name", categoryToSeed.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Categoría '%s' creada (ID: %d).", categoryToSeed.Name, categoryToSeed.ID)
	}
	return nil
}
