package configs

import (
	"os"

	"cancha.link/configs/configslog"

	"github.com/joho/godotenv"
)

// LoadEnv carga las variables del archivo .env si existe.
// En producción las variables vienen del entorno y el archivo es opcional.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info("Archivo .env no encontrado, se usan las variables del entorno.")
	}
}

// GetEnv devuelve la variable de entorno o el valor por defecto.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
