package main

import (
	"log"
	"net/http"

	"github.com/ohalloran/klondike/server"
	"github.com/ohalloran/klondike/store"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore())

	log.Printf("Listening on %s...", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), s))
}
