package core

import (
	"log"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop drives the periodic snapshot broadcast. There is no simulation
// to advance; a tick is just a DoSync.
type GameLoop struct {
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(tickRate int) *GameLoop {
	return &GameLoop{
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Broadcast loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Broadcast loop stopped")
			return
		case <-ticker.C:
			if err := srvsync.DoSync(); err != nil {
				log.Printf("Sync error: %v", err)
			}
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}
