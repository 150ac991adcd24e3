// Package telemetry lets a spectator watch a race from outside the core:
// a Hub fans out TurnEvents published by a host loop to any number of
// websocket-connected clients, and Server exposes that hub over HTTP.
//
// Nothing in this package is on the per-turn decision path; pilot.Drive
// remains a pure function with no telemetry dependency.
package telemetry
