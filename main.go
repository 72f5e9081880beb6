package main

import (
	"fmt"
	"log"

	"showdown/appconfig"
	"showdown/server"
	"showdown/store"
)

func main() {
	fmt.Println("Starting Showdown hand evaluation service...")

	cfg, err := appconfig.LoadAppConfig()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	history, err := store.NewSQLiteHistoryStore(cfg.HistoryPath)
	if err != nil {
		log.Fatalf("History store failed: %v", err)
	}
	defer history.Close()

	s := server.NewServer(history, cfg.Debug)
	if err := s.Start(cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
