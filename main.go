package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"github.com/NerdBoi008/care-connect/config"
	"github.com/NerdBoi008/care-connect/controllers"
	"github.com/NerdBoi008/care-connect/cron"
	"github.com/NerdBoi008/care-connect/db"
	"github.com/NerdBoi008/care-connect/redis"
	"github.com/NerdBoi008/care-connect/routes"
	"github.com/NerdBoi008/care-connect/services"
	"github.com/NerdBoi008/care-connect/utils"
)

func main() {
	cfg := config.Load()

	database, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database init failed")
	}
	if err := db.Migrate(database); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}

	var cache services.Cache
	if c, err := redis.New(cfg.RedisAddr); err != nil {
		logrus.WithError(err).Warn("redis unavailable, patient cache disabled")
	} else {
		cache = c
	}

	files, err := utils.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logrus.WithError(err).Fatal("blob store init failed")
	}

	mailer := utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)

	users := services.NewGormIdentityRepository(database)
	patients := services.NewGormPatientRepository(database)
	appointments := services.NewGormAppointmentRepository(database)

	patientSvc := services.NewPatientService(users, patients, files, cache, services.StorageConfig{
		Endpoint:  cfg.StorageEndpoint,
		BucketID:  cfg.BucketID,
		ProjectID: cfg.ProjectID,
	})
	appointmentSvc := services.NewAppointmentService(appointments, users, mailer)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Care Connect API")
	})

	appointmentCtl := controllers.NewAppointmentController(appointmentSvc)
	routes.SetupPatientRoutes(app, controllers.NewPatientController(patientSvc))
	routes.SetupAppointmentRoutes(app, appointmentCtl)
	routes.SetupAdminRoutes(app,
		controllers.NewAdminController(cfg.AdminEmail, cfg.AdminPasskeyHash, cfg.JWTSecret),
		appointmentCtl,
		cfg.JWTSecret,
	)

	if err := cron.NewReminders(appointments, users, mailer).Start(); err != nil {
		logrus.WithError(err).Fatal("reminder scheduler failed to start")
	}

	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
