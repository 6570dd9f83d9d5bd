package main

import (
	"log"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/database"
	authRoutes "github.com/AdamLouly/quizzapp/routers/authRoutes"
	classRoutes "github.com/AdamLouly/quizzapp/routers/classRoutes"
	clientRoutes "github.com/AdamLouly/quizzapp/routers/clientRoutes"
	dashboardRoutes "github.com/AdamLouly/quizzapp/routers/dashboardRoutes"
	publishedQuizRoutes "github.com/AdamLouly/quizzapp/routers/publishedQuizRoutes"
	quizReportRoutes "github.com/AdamLouly/quizzapp/routers/quizReportRoutes"
	quizResultRoutes "github.com/AdamLouly/quizzapp/routers/quizResultRoutes"
	quizRoutes "github.com/AdamLouly/quizzapp/routers/quizRoutes"
	userRoutes "github.com/AdamLouly/quizzapp/routers/userRoutes"
	"github.com/AdamLouly/quizzapp/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	db := database.Connect()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, db)
	userRoutes.SetupUserRoutes(app, db)
	clientRoutes.SetupClientRoutes(app, db)
	classRoutes.SetupClassRoutes(app, db)
	quizRoutes.SetupQuizRoutes(app, db)
	publishedQuizRoutes.SetupPublishedQuizRoutes(app, db)
	quizResultRoutes.SetupQuizResultRoutes(app, db)
	quizReportRoutes.SetupQuizReportRoutes(app, db)
	dashboardRoutes.SetupDashboardRoutes(app, db)

	utils.InitializeReportScheduler(db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
