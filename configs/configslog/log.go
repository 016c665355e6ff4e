package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log es el logger estructurado global de la aplicación.
// SLog es su variante sugared para mensajes con formato.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// Init configura los loggers globales según el entorno (APP_ENV).
// En producción usa JSON; en desarrollo, consola legible.
func Init() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Sin logger no se puede continuar.
		panic("no se pudo inicializar el logger: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// Sync vacía los buffers pendientes. Llamar con defer desde main.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
