package main

import (
	"log"
	"os"

	"FreshStock-Backend/cmd/config"
	migration "FreshStock-Backend/cmd/database/migrate"
	"FreshStock-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up application: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("api stopped: %v", err)
	}
}
