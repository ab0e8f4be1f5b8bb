package main

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	"github.com/devlupca-cloud/njob-creator-sub000/core/server"
)

// @title NJob Creator Agenda API
// @version 1.0
// @description Backend for the creator agenda: availability slots, live/call events and realtime status.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
