package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/banks-directory/internal/bootstrap"
	"github.com/GregMSThompson/banks-directory/internal/config"
	"github.com/GregMSThompson/banks-directory/internal/handlers"
	"github.com/GregMSThompson/banks-directory/internal/response"
	"github.com/GregMSThompson/banks-directory/internal/router"
	"github.com/GregMSThompson/banks-directory/internal/services"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New("")
	bs, err := bootstrap.Run(cfg, logger.NewLineHandler)
	exitOnError("bootstrap failed", err, bs.Log)

	// services
	dirserv := services.NewDirectoryService(bs.BanksAdapter)
	// no clipboard on a server; clients copy from the text/plain row endpoint
	brserv := services.NewBrowserService(dirserv, nil)

	appCtx := logger.ToContext(context.Background(), bs.Log)
	err = dirserv.Start(appCtx)
	exitOnError("directory start failed", err, bs.Log)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.BrowserSvc = brserv
	deps.DirectorySvc = dirserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "addr", cfg.Addr(), "banks_url", cfg.BanksURL)
	err = http.ListenAndServe(cfg.Addr(), r)
	exitOnError("server start failed", err, bs.Log)
}
