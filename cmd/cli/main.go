package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Trimmed mirror of the dashboard snapshot; only what the terminal
// view prints.
type snapshot struct {
	Loading        bool   `json:"loading"`
	Error          string `json:"error"`
	LastUpdateText string `json:"lastUpdateText"`
	Fresh          bool   `json:"fresh"`
	Services       []struct {
		Name            string `json:"name"`
		Online          bool   `json:"online"`
		Uptime24hText   string `json:"uptime24hText"`
		Uptime7dText    string `json:"uptime7dText"`
		LatencyText     string `json:"latencyText"`
		Failures24h     int    `json:"failures24h"`
		LastSuccessText string `json:"lastSuccessText"`
		Probe           *struct {
			Online      bool   `json:"online"`
			LatencyText string `json:"latencyText"`
		} `json:"probe"`
	} `json:"services"`
}

func main() {
	refresh := flag.Bool("refresh", false, "trigger a refresh cycle before printing")
	flag.Parse()

	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}
	client := &http.Client{Timeout: 10 * time.Second}

	if *refresh {
		resp, err := client.Post(api+"/api/refresh", "application/json", nil)
		if err != nil {
			fmt.Println("Error contacting API:", err)
			return
		}
		resp.Body.Close()
		// give the cycle a moment before reading the snapshot back
		time.Sleep(2 * time.Second)
	}

	resp, err := client.Get(api + "/api/dashboard")
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	var snap snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		fmt.Println("Bad response:", err)
		return
	}

	if snap.Loading && len(snap.Services) == 0 {
		fmt.Println("Dashboard is still loading, try again shortly.")
		return
	}
	if snap.Error != "" {
		fmt.Println("Dashboard error:", snap.Error)
		return
	}

	fmt.Printf("Last update: %s", snap.LastUpdateText)
	if snap.Fresh {
		fmt.Print("  (live)")
	}
	fmt.Println()
	for _, s := range snap.Services {
		state := "DOWN"
		if s.Online {
			state = "UP"
		}
		fmt.Printf("%-14s %-4s  24h %-8s 7d %-8s latency %-7s failures %d  last ok %s\n",
			s.Name, state, s.Uptime24hText, s.Uptime7dText, s.LatencyText, s.Failures24h, s.LastSuccessText)
		if s.Probe != nil {
			probeState := "DOWN"
			if s.Probe.Online {
				probeState = "UP"
			}
			fmt.Printf("%-14s probe %s (%s)\n", "", probeState, s.Probe.LatencyText)
		}
	}
}
