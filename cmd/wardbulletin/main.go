// filepath: cmd/wardbulletin/main.go
package main

import (
	"wardbulletin/internal/cli"

	// Import docs for Swagger
	_ "wardbulletin/docs"
)

// @title Ward Bulletin API
// @version 1.0.0
// @description Backend for collaboratively editing sacrament meeting agendas and printed ward bulletins.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
