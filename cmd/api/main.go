package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	config "github.com/anjiri1684/trivia/configs"
	"github.com/anjiri1684/trivia/database"
	"github.com/anjiri1684/trivia/handlers"
	"github.com/anjiri1684/trivia/jobs"
	"github.com/anjiri1684/trivia/routes"
	"github.com/anjiri1684/trivia/services"
	"github.com/anjiri1684/trivia/utils"
	"github.com/robfig/cron/v3"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("🔥 Invalid configuration: %v", err)
	}

	db, err := database.Connect(settings.DatabaseURL)
	if err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 %v", err)
	}
	if settings.SeedCategories {
		if err := database.SeedCategories(db); err != nil {
			log.Fatalf("🔥 %v", err)
		}
	}

	trivia := services.NewTriviaService(db)

	var scheduler *cron.Cron
	if settings.HealthJobEnabled() {
		scheduler, err = jobs.Schedule(settings.DBHealthSchedule, trivia)
		if err != nil {
			log.Fatalf("🔥 Failed to schedule database health job: %v", err)
		}
	}

	app := routes.NewApp(handlers.NewTrivia(trivia, utils.RandomPicker()))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("🔥 Server shutdown failed: %v", err)
		}
	}()

	log.Printf("✅ Server is running on port %s", settings.Port)
	listenErr := app.Listen(":" + settings.Port)

	if scheduler != nil {
		<-scheduler.Stop().Done()
		log.Println("Cron scheduler stopped.")
	}
	if listenErr != nil {
		log.Fatalf("🔥 Server failed to start: %v", listenErr)
	}
}
