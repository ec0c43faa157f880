package main

import (
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/config"
	"github.com/sudarshan-gautam/placement-tracking-app-sub002/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
