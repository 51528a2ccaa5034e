package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"maps"
	"math/rand/v2"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Step names, in the order a simulated student performs them
const (
	stepRegister = "register"
	stepLogin    = "login"
	stepSession  = "session"
	stepComplete = "complete"
)

var steps = []string{stepRegister, stepLogin, stepSession, stepComplete}

// StepResult contains metrics for a single request
type StepResult struct {
	Step         string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalClients     int
	CompletedClients int
	FailedClients    int
	TotalTime        time.Duration
	ResponseTimes    map[string][]time.Duration
	ErrorCounts      map[string]int
	SessionStats     map[int]int
	Lock             sync.Mutex
}

type sessionPayload struct {
	OK    bool              `json:"ok"`
	Items []json.RawMessage `json:"items"`
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent simulated students")
	totalClients := flag.Int("n", 50, "Total number of simulated students")
	baseURL := flag.String("url", "http://localhost:3000", "Base URL for the API")
	sessions := flag.Int("sessions", 5, "Number of sessions the server partitions the pool into")
	delayMs := flag.Int("delay", 50, "Delay between a student's requests in milliseconds")
	flag.Parse()

	fmt.Printf("Load testing %s with %d students (%d concurrent)\n", *baseURL, *totalClients, *concurrency)
	fmt.Printf("Each student: %v\n", steps)

	stats := &TestStats{
		TotalClients:  *totalClients,
		ResponseTimes: make(map[string][]time.Duration),
		ErrorCounts:   make(map[string]int),
		SessionStats:  make(map[int]int),
	}

	jobs := make(chan int, *totalClients)
	for i := 0; i < *totalClients; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	startTime := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 10 * time.Second}
			for range jobs {
				simulateStudent(client, *baseURL, *sessions, time.Duration(*delayMs)*time.Millisecond, stats)
			}
		}()
	}

	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				stats.Lock.Lock()
				finished := stats.CompletedClients + stats.FailedClients
				stats.Lock.Unlock()
				fmt.Printf("Progress: %d/%d students finished\n", finished, *totalClients)
			case <-done:
				return
			}
		}
	}()

	wg.Wait()
	ticker.Stop()
	close(done)
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

// simulateStudent walks one fresh account through a whole quiz round
func simulateStudent(client *http.Client, baseURL string, sessions int, delay time.Duration, stats *TestStats) {
	email := fmt.Sprintf("load-%s@studrev.test", uuid.NewString())
	credentials := map[string]string{"email": email, "password": uuid.NewString()}
	sessionNumber := rand.IntN(sessions)

	record := func(result StepResult) bool {
		stats.Lock.Lock()
		defer stats.Lock.Unlock()
		stats.ResponseTimes[result.Step] = append(stats.ResponseTimes[result.Step], result.ResponseTime)
		if !result.Success {
			stats.ErrorCounts[fmt.Sprintf("%s: %v", result.Step, result.Error)]++
		}
		return result.Success
	}

	if !record(call(client, stepRegister, http.MethodPost, baseURL+"/api/register", credentials, nil)) {
		finish(stats, sessionNumber, false)
		return
	}
	time.Sleep(delay)

	if !record(call(client, stepLogin, http.MethodPost, baseURL+"/api/login", credentials, nil)) {
		finish(stats, sessionNumber, false)
		return
	}
	time.Sleep(delay)

	var session sessionPayload
	sessionURL := fmt.Sprintf("%s/api/session/%d", baseURL, sessionNumber)
	if !record(call(client, stepSession, http.MethodGet, sessionURL, nil, &session)) || len(session.Items) == 0 {
		finish(stats, sessionNumber, false)
		return
	}
	time.Sleep(delay)

	completion := map[string]any{
		"email":   email,
		"correct": rand.IntN(len(session.Items) + 1),
		"max":     len(session.Items),
	}
	ok := record(call(client, stepComplete, http.MethodPost, sessionURL+"/complete", completion, nil))
	finish(stats, sessionNumber, ok)
}

func finish(stats *TestStats, sessionNumber int, ok bool) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()
	stats.SessionStats[sessionNumber]++
	if ok {
		stats.CompletedClients++
	} else {
		stats.FailedClients++
	}
}

func call(client *http.Client, step, method, url string, body any, out any) StepResult {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return StepResult{Step: step, Error: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return StepResult{Step: step, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	result := StepResult{Step: step, ResponseTime: time.Since(start)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			result.Success = false
			result.Error = fmt.Errorf("decode response: %w", err)
		}
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Students:            %d\n", stats.TotalClients)
	fmt.Printf("Completed rounds:    %d (%.1f%%)\n", stats.CompletedClients,
		float64(stats.CompletedClients)/float64(stats.TotalClients)*100)
	fmt.Printf("Failed rounds:       %d\n", stats.FailedClients)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	totalRequests := 0
	for _, times := range stats.ResponseTimes {
		totalRequests += len(times)
	}
	fmt.Printf("Requests/second:     %.2f\n", float64(totalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("%-10s %8s %12s %12s %12s %12s\n", "step", "count", "avg", "p50", "p95", "max")
	for _, step := range steps {
		times := slices.Clone(stats.ResponseTimes[step])
		if len(times) == 0 {
			continue
		}
		slices.Sort(times)

		var total time.Duration
		for _, d := range times {
			total += d
		}
		fmt.Printf("%-10s %8d %12v %12v %12v %12v\n", step, len(times),
			total/time.Duration(len(times)), percentile(times, 50), percentile(times, 95), times[len(times)-1])
	}

	fmt.Println("\n----------------- SESSION DISTRIBUTION -----------------")
	for _, n := range slices.Sorted(maps.Keys(stats.SessionStats)) {
		fmt.Printf("Session %d: %d students\n", n, stats.SessionStats[n])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
