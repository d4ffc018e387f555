package bootstrap

import (
	"log/slog"
	"net/http"

	"github.com/rotisserie/eris"

	banksclient "github.com/GregMSThompson/banks-directory/internal/client/banks"
	"github.com/GregMSThompson/banks-directory/internal/config"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

type Bootstrap struct {
	Log          *slog.Logger
	HTTPClient   *http.Client
	BanksAdapter *banksclient.Adapter
}

// Run builds the shared clients. handler picks the log output; the API logs
// JSON lines, the CLI logs to stderr.
func Run(cfg *config.Config, handler func(level slog.Level) slog.Handler) (*Bootstrap, error) {
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, handler)
	if err := cfg.Validate(); err != nil {
		return bs, eris.Wrap(err, "bootstrap")
	}

	bs.HTTPClient = InitHTTPClient()
	bs.BanksAdapter = banksclient.NewAdapter(bs.HTTPClient, cfg.BanksURL)

	return bs, nil
}
