package main

import (
	"crewhub/core/logger"
	"crewhub/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
