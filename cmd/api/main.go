package main

import (
	"quote_relay/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quote Relay API
// @version         1.0
// @description     Sends quote emails on behalf of quote owners and tracks when clients view them.

// @host      localhost:5001
// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a Firebase ID token.

func main() {
	routes.Run()
}
