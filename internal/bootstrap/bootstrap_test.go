package bootstrap

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/GregMSThompson/banks-directory/internal/config"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

func TestRunBuildsClients(t *testing.T) {
	cfg := &config.Config{BanksURL: config.DefaultBanksURL, LogLevel: "debug", Port: "8080"}

	bs, err := Run(cfg, logger.NewTestHandler)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if bs.Log == nil || bs.HTTPClient == nil || bs.BanksAdapter == nil {
		t.Fatalf("incomplete bootstrap: %+v", bs)
	}
	if bs.HTTPClient.Timeout != 0 {
		t.Fatalf("client timeout = %v, want none", bs.HTTPClient.Timeout)
	}
	transport, ok := bs.HTTPClient.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("transport = %T", bs.HTTPClient.Transport)
	}
	if transport.ResponseHeaderTimeout != 0 {
		t.Fatalf("response header timeout = %v, want none", transport.ResponseHeaderTimeout)
	}
	if !bs.Log.Enabled(t.Context(), slog.LevelDebug) {
		t.Fatal("log level should follow config")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := &config.Config{BanksURL: "not a url", LogLevel: "info", Port: "8080"}

	bs, err := Run(cfg, logger.NewTestHandler)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if bs.Log == nil {
		t.Fatal("logger should be usable even when bootstrap fails")
	}
}
