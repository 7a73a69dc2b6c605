package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Seeds a synthetic fleet and mission load over the REST surface. Handy both
// as a smoke/load tool and to populate a development database for the
// dashboard.

var maxDrones int = 2000
var missionsPerBatch int = 200
var httpHostPort string = "127.0.0.1:5000"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var droneModels = []string{"SkyHawk X1", "AgriScan Pro", "TerraMapper 4", "Falcon LR"}
var patterns = []string{"Grid", "Crosshatch", "Perimeter"}
var sensors = []string{"RGB", "Thermal", "Multispectral", "LiDAR"}

func randomCoordinates() []float64 {
	// around the Bay Area, roughly
	return []float64{-122.4 + rnd.Float64()*0.5, 37.3 + rnd.Float64()*0.5}
}

func postJSON(path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return http.Post(
		fmt.Sprintf("http://%s%s", httpHostPort, path),
		"application/json",
		bytes.NewReader(body),
	)
}

func seedDrone() error {
	resp, err := postJSON("/api/drones", map[string]any{
		"droneId":      "DRONE-" + uuid.NewString()[:8],
		"model":        droneModels[rnd.Intn(len(droneModels))],
		"batteryLevel": float64(rnd.Intn(60) + 40),
		"location": map[string]any{
			"type":        "Point",
			"coordinates": randomCoordinates(),
		},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("drone create returned %d", resp.StatusCode)
	}
	return nil
}

func seedMission(index int) error {
	path := make([]map[string]any, 0, 4)
	for i := 0; i < 4; i++ {
		path = append(path, map[string]any{
			"type":        "Point",
			"coordinates": randomCoordinates(),
		})
	}

	resp, err := postJSON("/api/missions", map[string]any{
		"name": fmt.Sprintf("Survey run %d", index),
		"location": map[string]any{
			"type":        "Point",
			"coordinates": randomCoordinates(),
			"address":     fmt.Sprintf("%d Field Road", rnd.Intn(9000)+100),
		},
		"startTime":      time.Now().Add(time.Duration(rnd.Intn(72)) * time.Hour).Format(time.RFC3339),
		"flightPath":     path,
		"flightAltitude": float64(rnd.Intn(80) + 40),
		"patternType":    patterns[rnd.Intn(len(patterns))],
		"sensorType":     sensors[rnd.Intn(len(sensors))],
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("mission create returned %d", resp.StatusCode)
	}
	return nil
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	start := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures int

	sem := make(chan struct{}, 32)
	for i := 0; i < maxDrones; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := seedDrone(); err != nil {
				mu.Lock()
				failures++
				mu.Unlock()
			}
			if i < missionsPerBatch {
				if err := seedMission(i); err != nil {
					mu.Lock()
					failures++
					mu.Unlock()
				}
			}
		}(i)
	}
	wg.Wait()

	fmt.Printf("seeded %d drones and %d missions in %v (%d failures)\n",
		maxDrones, missionsPerBatch, time.Since(start), failures)
}
