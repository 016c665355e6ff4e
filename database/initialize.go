package database

import (
	"cancha.link/configs/configslog"
	"cancha.link/database/migrations"
	"cancha.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize corre migraciones y seeders según las banderas, todo dentro
// de una transacción: o queda completo o no queda nada.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Sin banderas de migrate o seed, no hay nada que hacer.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("No se pudo iniciar la transacción", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("La inicialización de la base de datos falló (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Hubo un error, revirtiendo la transacción.", zap.Error(err))
			if rbErr := tx.Rollback().Error; rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Error adicional durante el rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Inicializando la base de datos...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("La migración falló", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migraciones completadas.")
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("El seeding falló", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders completados.")
	}

	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("El commit falló", zap.Error(err))
		return
	}
	configslog.SLog.Info("Base de datos inicializada con éxito.")
}

// RunMigrationsInOrder corre las migraciones respetando las dependencias
// entre tablas: primero las referencias, después quien las usa.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCourtsTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateAppointmentsTable(db); err != nil {
		return err
	}
	return migrations.MigrateStoreTables(db)
}

// RunSeeders carga los datos iniciales idempotentes.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedSystemUser(db); err != nil {
		return err
	}
	if err := seeders.SeedCourts(db); err != nil {
		return err
	}
	return seeders.SeedReservedCategories(db)
}
