package main

import (
	"fmt"
	"os"

	"github.com/jalexanderII/todo-railway/app"
	"github.com/jalexanderII/todo-railway/config"
)

// @title To-do API
// @version 1.0
// @description Personal to-do list: items with a title, description, due date and done flag, scoped to the logged-in user.
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey Session
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := app.SetupAndRunApp(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
