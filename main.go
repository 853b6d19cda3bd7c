package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/docdash/docdash-server/booking"
	"github.com/docdash/docdash-server/controllers"
	"github.com/docdash/docdash-server/cron"
	"github.com/docdash/docdash-server/db"
	"github.com/docdash/docdash-server/ledger"
	"github.com/docdash/docdash-server/notify"
	"github.com/docdash/docdash-server/payments"
	"github.com/docdash/docdash-server/redis"
	"github.com/docdash/docdash-server/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	notifier := notify.New(notify.NewMailer())
	defer notifier.Close()

	svc := booking.NewService(
		db.NewAppointmentStore(db.DB),
		db.NewDoctorStore(db.DB),
		db.NewPatientStore(db.DB),
		ledger.NewGormStore(db.DB),
		notifier,
		payments.NewRazorpayProvider(),
	)
	controllers.Setup(svc, ledger.NewGormStore(db.DB), redis.NewVerificationStore(redis.Client), notifier)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("DocDash API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupPaymentRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs(notifier)

	if err := app.Listen(":8000"); err != nil {
		log.Fatal(err)
	}
}
