package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	v1 "github.com/roversapp/event-services/bookinggateway/internal/api/v1"
)

const prefixV1 = "/v1"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"/booking", handler.BookTicket)
	app.Post(prefixV1+"/booking/cancel", handler.CancelTicket)
	app.Post(prefixV1+"/wallet/balance", handler.WalletBalance)
}
