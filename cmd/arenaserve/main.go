// Command arenaserve replays matches to WebSocket spectators. Each
// match is simulated up front, then its event log is streamed at
// event-time pacing (scaled by -speed). Spectators can pause, resume,
// or restart the replay with a fresh seed.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"arena_ai/internal/config"
	"arena_ai/internal/sim"
)

type server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	game  *config.GameConfig
	rules *config.RulesConfig
	seed  int64
	speed float64

	paused  bool
	restart chan int64

	upgrader websocket.Upgrader
}

type control struct {
	Cmd  string `json:"cmd"` // pause | resume | restart
	Seed int64  `json:"seed,omitempty"`
}

func newServer(game *config.GameConfig, rules *config.RulesConfig, seed int64, speed float64) *server {
	return &server{
		clients: make(map[*websocket.Conn]bool),
		game:    game,
		rules:   rules,
		seed:    seed,
		speed:   speed,
		restart: make(chan int64, 1),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = true
	n := len(s.clients)
	s.mu.Unlock()
	log.Printf("spectator connected (%d total)", n)

	go s.readPump(conn)
}

func (s *server) readPump(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("spectator read: %v", err)
			}
			return
		}
		var c control
		if err := json.Unmarshal(raw, &c); err != nil {
			continue
		}
		switch c.Cmd {
		case "pause":
			s.mu.Lock()
			s.paused = true
			s.mu.Unlock()
		case "resume":
			s.mu.Lock()
			s.paused = false
			s.mu.Unlock()
		case "restart":
			seed := c.Seed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			select {
			case s.restart <- seed:
			default:
			}
		}
	}
}

func (s *server) broadcast(v any) {
	raw, _ := json.Marshal(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *server) isPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// replayLoop simulates a match, streams its events, then waits for a
// restart command. Pausing stalls the stream without losing position.
func (s *server) replayLoop() {
	seed := s.seed
	for {
		res := sim.RunSingle(sim.Options{Game: s.game, Rules: s.rules, Seed: seed, Record: true})
		log.Printf("replaying match %s (seed %d, winner %s)", res.ID, seed, res.Winner)
		s.broadcast(map[string]any{"type": "MatchStart", "id": res.ID, "seed": seed, "field": res.Field})

		prev := 0.0
		interrupted := false
		for _, ev := range res.Events {
			for s.isPaused() {
				time.Sleep(100 * time.Millisecond)
			}
			if dt := ev.T - prev; dt > 0 && s.speed > 0 {
				time.Sleep(time.Duration(dt / s.speed * float64(time.Second)))
			}
			prev = ev.T
			s.broadcast(ev)

			select {
			case seed = <-s.restart:
				interrupted = true
			default:
			}
			if interrupted {
				break
			}
		}
		if interrupted {
			continue
		}
		s.broadcast(map[string]any{"type": "MatchEnd", "winner": res.Winner, "turns": res.Turns})
		seed = <-s.restart
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	n := len(s.clients)
	s.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "spectators": n})
}

func main() {
	var cfgDir, addr string
	var seed int64
	var speed float64
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.Int64Var(&seed, "seed", 12345, "seed for the first match")
	flag.Float64Var(&speed, "speed", 4.0, "replay speed multiplier")
	flag.Parse()

	game, rules, err := config.LoadAll(cfgDir)
	if err != nil {
		panic(err)
	}

	s := newServer(game, rules, seed, speed)
	go s.replayLoop()

	http.HandleFunc("/watch", s.handleWatch)
	http.HandleFunc("/health", s.handleHealth)
	fmt.Printf("arenaserve listening on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
