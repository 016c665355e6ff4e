package main

import (
	"flag"

	"cancha.link/configs"
	"cancha.link/configs/configslog"
	"cancha.link/database"
)

func main() {
	configslog.Init()
	defer configslog.Sync()

	migrateFlag := flag.Bool("migrate", false, "Correr las migraciones de la base de datos")
	seedFlag := flag.Bool("seed", false, "Cargar los datos iniciales (seeders)")
	flag.Parse()

	configs.LoadEnv()
	configs.InitDB()
	defer configs.CloseDB()

	database.Initialize(configs.GetDB(), *migrateFlag, *seedFlag)
}
