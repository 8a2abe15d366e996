package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxClients int = 200
var actionsPerClient int = 5
var httpHostPort string = "127.0.0.1:3000"
var adminUsername string = "admin"
var adminPassword string = "admin123"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	login()
	fmt.Printf("logged in as %v\n", adminUsername)

	locations := make([]string, maxClients)
	for i := 0; i < maxClients; i++ {
		locations[i] = "loc-" + uuid.NewString()[:8]
	}
	fmt.Printf("generated %v locations\n", maxClients)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			insertReading(locations[i])
			fmt.Printf("\rinserted reading for location %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted readings for %v locations: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxClients; i++ {
		i := i
		wg.Add(1)
		go func() {
			doActions(locations[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v clients: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients*actionsPerClient)/usedTime.Seconds(),
	)
}

func login() {
	payload := map[string]string{
		"username": adminUsername,
		"password": adminPassword,
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/auth/login", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		log.Fatal("Failed to login:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Login rejected with status %v", resp.StatusCode)
	}
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func insertReading(location string) {
	payload := map[string]any{
		"location":    location,
		"ph_value":    rndFloat64(5.5, 9.0, 2),
		"temperature": rndFloat64(0.0, 35.0, 2),
		"turbidity":   rndFloat64(0.0, 10.0, 2),
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/admin/readings", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doActions(location string) {
	actions := []func(){
		genSummaryAction(),
		genRecentAction(),
		genListReadingsAction(location),
		genGraphAction(location),
		genWarningsAction(),
	}
	actionNames := []string{
		"Summary",
		"Recent",
		"ListReadings",
		"Graph",
		"Warnings",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for location %v", actionNames[index], location)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func get(path string) {
	resp, err := http.Get(fmt.Sprintf("http://%s%s", httpHostPort, path))
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
	}
}

func genSummaryAction() func() {
	return func() { get("/dashboard/summary") }
}

func genRecentAction() func() {
	return func() { get("/dashboard/recent?sort=temperature&order=desc") }
}

func genListReadingsAction(location string) func() {
	return func() {
		get(fmt.Sprintf("/admin/readings?location=%s&page=%v", location, 1+rnd.Int31n(3)))
	}
}

func genGraphAction(location string) func() {
	return func() {
		get(fmt.Sprintf("/graphs/data?start_date=2026-08-01&end_date=2026-08-31&location=%s&data_type=ph_value", location))
	}
}

func genWarningsAction() func() {
	return func() { get("/dashboard/warnings") }
}
