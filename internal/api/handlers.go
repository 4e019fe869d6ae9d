/*
Package api
File: handlers.go
Description:
    REST surface. The HTTP goroutines never touch the World directly; the
    simulation publishes a StateFrame after each rendered frame and the
    handlers serve the latest one under a read lock. Helm input goes the
    other way, staged onto the loop via the scene.
*/

package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/astrocademy/voyager-server/internal/game"
)

// ShipState is the presentation view of the player vessel.
type ShipState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Angle   float64 `json:"angle"`
	VX      float64 `json:"vx"`
	VY      float64 `json:"vy"`
	Fuel    float64 `json:"fuel"`
	MaxFuel float64 `json:"max_fuel"`
}

// CapsuleProgress summarizes the collection state for the HUD.
type CapsuleProgress struct {
	Collected int `json:"collected"`
	Total     int `json:"total"`
}

// StateFrame is one rendered snapshot of the simulation.
type StateFrame struct {
	Tick     uint64          `json:"tick"`
	Ship     ShipState       `json:"ship"`
	Capsules CapsuleProgress `json:"capsules"`
}

// HelmRequest is the directional intent posted by the input layer.
type HelmRequest struct {
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Server holds the read-only config, the latest frame, and the helm sink.
type Server struct {
	cfg    *game.Config
	scene  *game.Scene
	logger *zap.Logger

	frameMu sync.RWMutex
	frame   StateFrame
}

func NewServer(cfg *game.Config, scene *game.Scene, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, scene: scene, logger: logger}
}

// PublishFrame stores the latest snapshot. Called from the loop goroutine's
// render callback.
func (s *Server) PublishFrame(frame StateFrame) {
	s.frameMu.Lock()
	s.frame = frame
	s.frameMu.Unlock()
}

// Frame returns the most recently published snapshot.
func (s *Server) Frame() StateFrame {
	s.frameMu.RLock()
	defer s.frameMu.RUnlock()
	return s.frame
}

// Routes wires the REST endpoints and the websocket upgrade.
func (s *Server) Routes(hub *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ship", s.handleGetShip)
	mux.HandleFunc("/api/stage", s.handleGetStage)
	mux.HandleFunc("/api/capsules", s.handleGetCapsules)
	mux.HandleFunc("/api/helm", s.handleHelm)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})
	return corsMiddleware(mux)
}

func (s *Server) handleGetShip(w http.ResponseWriter, r *http.Request) {
	frame := s.Frame()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame.Ship)
}

func (s *Server) handleGetStage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.cfg)
}

func (s *Server) handleGetCapsules(w http.ResponseWriter, r *http.Request) {
	frame := s.Frame()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame.Capsules)
}

// handleHelm stages a velocity update for the ship. The write happens on
// the loop goroutine at the next frame boundary.
func (s *Server) handleHelm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	var req HelmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	s.scene.SetHelm(req.VX, req.VY)
	w.WriteHeader(http.StatusAccepted)
}

// corsMiddleware lets the desktop client talk to the server across domains.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
