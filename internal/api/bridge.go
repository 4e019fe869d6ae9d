/*
Package api
File: bridge.go
Description:
    Subscribes to the simulation bus and republishes each event as a JSON
    frame on the hub. Handlers run synchronously on the loop goroutine; the
    hub's Broadcast channel is the hand-off point to the network side.
*/

package api

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/astrocademy/voyager-server/internal/sim"
)

const systemSender = "simulation"

// BridgeEvents forwards the core bus topics to connected clients.
func BridgeEvents(bus *sim.EventBus, hub *Hub, logger *zap.Logger) {
	forward := func(frameType string) sim.Handler {
		return func(payload any) {
			data, err := json.Marshal(Message{Type: frameType, Payload: payload, Sender: systemSender})
			if err != nil {
				logger.Error("marshal event frame", zap.String("type", frameType), zap.Error(err))
				return
			}
			select {
			case hub.Broadcast <- data:
			default:
				// A full broadcast queue must not stall the simulation.
				logger.Warn("dropping event frame, broadcast queue full", zap.String("type", frameType))
			}
		}
	}

	bus.On(sim.TopicFuelEmpty, forward("fuel_empty"))
	bus.On(sim.TopicFuelRefueled, forward("fuel_refueled"))
	bus.On(sim.TopicObstacleHit, forward("obstacle_hit"))
	bus.On(sim.TopicCapsuleCollected, forward("capsule_collected"))
	bus.On(sim.TopicCapsulesComplete, forward("capsules_complete"))
}
