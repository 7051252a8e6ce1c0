package main

import (
	"github.com/joho/godotenv"

	"rosmsg-flatten/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
