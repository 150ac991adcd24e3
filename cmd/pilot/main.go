// Command pilot drives a single turn against a circuit file and prints
// the emitted acceleration. With -telemetry it also serves a websocket
// feed of the turn it just computed, useful for hooking a spectator UI
// onto an otherwise one-shot CLI invocation during local development.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/circuitpilot/racepilot/circuit"
	"github.com/circuitpilot/racepilot/config"
	"github.com/circuitpilot/racepilot/geometry"
	"github.com/circuitpilot/racepilot/pilot"
	"github.com/circuitpilot/racepilot/telemetry"
)

var (
	circuitPath  *string
	configPath   *string
	myX, myY     *int
	velX, velY   *int
	fuel         *int
	vMax         *int
	opp1X, opp1Y *int
	opp2X, opp2Y *int
	serveAddr    *string
)

func init() {
	circuitPath = flag.String("circuit", "", "path to a circuit grid file (required)")
	configPath = flag.String("config", "", "path to an optional tuning config file")
	myX = flag.Int("x", 0, "pilot x position")
	myY = flag.Int("y", 0, "pilot y position")
	velX = flag.Int("vx", 0, "pilot x velocity")
	velY = flag.Int("vy", 0, "pilot y velocity")
	fuel = flag.Int("fuel", 100, "pilot remaining fuel")
	vMax = flag.Int("vmax", 2, "speed cap")
	opp1X = flag.Int("opp1x", -1, "opponent 1 x position (-1 means off-grid)")
	opp1Y = flag.Int("opp1y", -1, "opponent 1 y position")
	opp2X = flag.Int("opp2x", -1, "opponent 2 x position (-1 means off-grid)")
	opp2Y = flag.Int("opp2y", -1, "opponent 2 y position")
	serveAddr = flag.String("telemetry", "", "if set, serve a telemetry websocket on this address after driving the turn")
	flag.Parse()
}

func runApp() error {
	if *circuitPath == "" {
		return fmt.Errorf("pilot: -circuit is required")
	}

	c, _, err := circuit.LoadFile(*circuitPath)
	if err != nil {
		return fmt.Errorf("pilot: loading circuit: %w", err)
	}

	tuning, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("pilot: loading config: %w", err)
	}

	obs := pilot.Observation{
		Circuit: c,
		MyPos:   geometry.Vector{X: *myX, Y: *myY},
		MySpeed: geometry.Vector{X: *velX, Y: *velY},
		Fuel:    *fuel,
		Opp1:    geometry.Vector{X: *opp1X, Y: *opp1Y},
		Opp2:    geometry.Vector{X: *opp2X, Y: *opp2Y},
		VMax:    *vMax,
	}

	accel, driveErr := pilot.Drive(obs,
		pilot.WithGasFormula(tuning.GasFormula()),
		pilot.WithSandSurcharge(tuning.SandStepSurcharge),
		pilot.WithOccupiedPenalty(tuning.OccupiedScore),
	)
	fmt.Printf("%d %d\n", accel.X, accel.Y)
	if driveErr != nil {
		log.Printf("pilot: turn diagnostic: %v", driveErr)
	}

	if *serveAddr != "" {
		hub := telemetry.NewHub()
		hub.Publish(telemetry.NewTurnEvent(0, time.Now(), accel, driveErr))
		srv := telemetry.NewServer(hub, log.Default())
		log.Printf("pilot: serving telemetry on %s", *serveAddr)
		return http.ListenAndServe(*serveAddr, srv.Router())
	}
	return nil
}

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
