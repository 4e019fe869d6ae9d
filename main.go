/*
Package main
File: main.go
Description: Server entry point. Loads the stage configuration, seeds the
simulation scene, starts the real-time WebSocket hub and the fixed-timestep
loop, and serves the REST + WS surface until interrupted.
*/

package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/astrocademy/voyager-server/internal/api"
	"github.com/astrocademy/voyager-server/internal/game"
)

// stateTickEvery throttles full state frames on the socket; event frames
// (fuel, capsules) are forwarded immediately regardless.
const stateTickEvery = 6

func main() {
	configPath := flag.String("config", "stage.yaml", "path to the stage configuration")
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// 1. Load the static stage configuration from YAML.
	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}
	logger.Info("stage loaded",
		zap.Float64("width", cfg.Stage.Width),
		zap.Float64("height", cfg.Stage.Height),
		zap.Int("asteroids", len(cfg.Asteroids)),
		zap.Int("capsules", len(cfg.Capsules)))

	// 2. Seed the simulation scene.
	scene := game.BuildScene(cfg, nil)

	// 3. Start the real-time hub and bridge the simulation bus onto it.
	hub := api.NewHub(logger)
	go hub.Run()
	api.BridgeEvents(scene.Bus, hub, logger)

	// 4. REST surface sharing the latest rendered frame.
	server := api.NewServer(cfg, scene, logger)

	// Inbound WS frames carry helm intents.
	hub.OnMessage = func(data []byte) {
		var msg struct {
			Type    string          `json:"type"`
			Payload api.HelmRequest `json:"payload"`
		}
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "helm" {
			return
		}
		scene.SetHelm(msg.Payload.VX, msg.Payload.VY)
	}

	// 5. Publish a snapshot after every rendered frame; broadcast a
	// throttled state_tick so clients without the REST poller stay live.
	var frames uint64
	scene.Loop.OnRender(func() {
		frame := buildFrame(scene)
		server.PublishFrame(frame)

		frames++
		if frames%stateTickEvery != 0 {
			return
		}
		data, err := json.Marshal(api.Message{Type: "state_tick", Payload: frame, Sender: "simulation"})
		if err != nil {
			return
		}
		select {
		case hub.Broadcast <- data:
		default:
		}
	})

	// 6. Run the loop until a signal arrives.
	stop := make(chan struct{})
	go scene.Loop.Run(stop)

	httpServer := &http.Server{Addr: *addr, Handler: server.Routes(hub)}
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Info("shutting down")
		close(stop)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)
	}()

	logger.Info("voyager server live", zap.String("addr", *addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("http server failed", zap.Error(err))
	}
}

// buildFrame reads the World on the loop goroutine, the only place that is
// allowed to.
func buildFrame(scene *game.Scene) api.StateFrame {
	frame := api.StateFrame{
		Tick: scene.Loop.Tick(),
		Capsules: api.CapsuleProgress{
			Collected: scene.Capsules.CollectedCount(),
			Total:     scene.Capsules.Total(),
		},
	}
	if pos, ok := scene.World.PositionOf(scene.Ship); ok {
		frame.Ship.X = pos.X
		frame.Ship.Y = pos.Y
		frame.Ship.Angle = pos.Angle
	}
	if vel, ok := scene.World.VelocityOf(scene.Ship); ok {
		frame.Ship.VX = vel.VX
		frame.Ship.VY = vel.VY
	}
	if fuel, ok := scene.World.FuelOf(scene.Ship); ok {
		frame.Ship.Fuel = fuel.Current
		frame.Ship.MaxFuel = fuel.Max
	}
	return frame
}
