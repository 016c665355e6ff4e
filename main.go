package main

import (
	"flag"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/database"
	"cancha.link/pkg/proofstore"
	"cancha.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.Init()
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Correr las migraciones antes de arrancar")
	seedFlag := flag.Bool("seed", false, "Cargar los datos iniciales antes de arrancar")
	flag.Parse()

	configs.LoadEnv()
	configs.InitDB()
	defer configs.CloseDB()
	configs.InitRedis()

	if *migrateFlag || *seedFlag {
		database.Initialize(configs.GetDB(), *migrateFlag, *seedFlag)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main_layout",
		PassLocalsToViews: true,
	})

	// Los comprobantes se guardan en disco y se sirven como estáticos.
	uploadsDir := configs.GetEnv("UPLOADS_DIR", "./uploads")
	proofs := proofstore.New(uploadsDir, "/uploads")
	app.Static("/uploads", uploadsDir)
	app.Static("/static", "./static")

	routes.SetupRoutes(app, proofs)

	addr := ":" + configs.GetEnv("APP_PORT", "3000")
	configslog.SLog.Infof("Servidor escuchando en %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("El servidor no pudo arrancar", zap.Error(err))
	}
}
