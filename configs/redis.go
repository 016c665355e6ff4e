package configs

import (
	"context"
	"strconv"

	"cancha.link/configs/configslog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var redisClient *redis.Client

// InitRedis abre el cliente de Redis usado por el canal de tiempo real
// (eventos de nuevas citas). Un fallo aquí no es fatal: la aplicación
// funciona sin notificaciones en vivo.
func InitRedis() *redis.Client {
	dbIndex, _ := strconv.Atoi(GetEnv("REDIS_DB", "0"))
	redisClient = redis.NewClient(&redis.Options{
		Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       dbIndex,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		configslog.Log.Warn("Redis no disponible, las notificaciones en vivo quedan deshabilitadas", zap.Error(err))
	} else {
		configslog.SLog.Info("Conexión a Redis establecida.")
	}
	return redisClient
}

// GetRedis devuelve el cliente global de Redis (puede no estar conectado).
func GetRedis() *redis.Client {
	if redisClient == nil {
		return InitRedis()
	}
	return redisClient
}
