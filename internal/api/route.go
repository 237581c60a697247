package api

import (
	v1 "github.com/campusly/course-services/walletgateway/internal/api/v1"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "/api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"wallets", handler.CreateWallet)
	app.Post(prefixV1+"wallets/balance", handler.GetBalance)
	app.Post(prefixV1+"wallets/balance/validate", handler.ValidateBalance)
	app.Post(prefixV1+"wallets/debit", handler.Debit)
	app.Post(prefixV1+"wallets/cashback", handler.CreditCashback)
	app.Post(prefixV1+"wallets/refund", handler.RefundFailedPayment)
	app.Post(prefixV1+"wallets/adjust", handler.AdminAdjust)
	app.Post(prefixV1+"wallets/history", handler.History)
}
