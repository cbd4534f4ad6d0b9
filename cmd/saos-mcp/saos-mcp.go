package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/kiosk404/saos-mcp/internal/saosmcp"
)

func main() {
	saosmcp.NewApp(saosmcp.AppName).Run()
}
