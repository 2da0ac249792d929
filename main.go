package main

import (
	"flag"

	"github.com/MUCCHU/imf-gadgets-api/global"
	"github.com/MUCCHU/imf-gadgets-api/initialize"
	"github.com/MUCCHU/imf-gadgets-api/server"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional, env vars apply on top)")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("listening")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("http server stopped")
	}
}
