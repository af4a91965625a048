package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/halninethousand/3d-cell-automata/internal/app"
	"github.com/halninethousand/3d-cell-automata/internal/core"
	"github.com/halninethousand/3d-cell-automata/internal/lattice"
	"github.com/halninethousand/3d-cell-automata/internal/stream"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.ApplyFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	r, err := cfg.BuildRule()
	if err != nil {
		log.Fatal(err)
	}

	grid, err := lattice.New(cfg.Size)
	if err != nil {
		log.Fatal(err)
	}
	spawned := grid.SeedCluster(r, core.NewRNG(cfg.Seed), cfg.Radius, cfg.Amount)
	log.Printf("seeded %d cells in a radius-%d cluster (size=%d rule=%s)",
		spawned, cfg.Radius, cfg.Size, cfg.Rule)

	hub := stream.NewHub()
	stop := make(chan struct{})
	defer close(stop)
	go stream.Run(grid, r, cfg.Colors(), hub, cfg.TPS, stop)

	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	http.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			log.Printf("upgrade failed: %v", err)
			return
		}
		id := hub.Subscribe(conn)
		// Clients only listen; the read loop just notices disconnects.
		go func() {
			defer hub.Unsubscribe(id)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	log.Printf("streaming frames on ws://%s/ws", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
