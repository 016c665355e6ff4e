package configs

import (
	"fmt"
	"time"

	"cancha.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB abre la conexión a Postgres y configura el pool.
// Debe llamarse una sola vez desde main antes de usar GetDB.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		GetEnv("DB_HOST", "localhost"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_USER", "postgres"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_NAME", "cancha_link"),
		GetEnv("DB_SSLMODE", "disable"),
		// Hora de Venezuela (GMT-04:00), igual que la zona mostrada en el agendador.
		GetEnv("DB_TIMEZONE", "America/Caracas"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("No se pudo conectar a la base de datos", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("No se pudo obtener el pool de conexiones", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Conexión a la base de datos establecida.")
	return db
}

// GetDB devuelve la conexión global. Panic si InitDB no fue llamado.
func GetDB() *gorm.DB {
	if db == nil {
		panic("configs: la base de datos no fue inicializada (llamar InitDB primero)")
	}
	return db
}

// CloseDB cierra el pool de conexiones al apagar la aplicación.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("No se pudo obtener el pool para cerrarlo", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Error al cerrar la conexión a la base de datos", zap.Error(err))
	}
}
