package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BookingRequest is the booking payload
type BookingRequest struct {
	SlotID      string `json:"slotId"`
	Description string `json:"description"`
}

// ErrorResponse is the API error body
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AttemptResult contains the outcome of one booking attempt
type AttemptResult struct {
	Patient      string
	StatusCode   int
	ErrorCode    int
	ResponseTime time.Duration
	Error        error
}

// RaceStats contains aggregated statistics
type RaceStats struct {
	Attempts      int
	Booked        []string
	StatusCounts  map[int]int
	ErrorCodes    map[int]int
	Transport     map[string]int
	ResponseTimes []time.Duration
	TotalTime     time.Duration
	Lock          sync.Mutex
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	slotID := flag.String("slot", "", "Availability slot every patient races for")
	patientsStr := flag.String("p", "", "Comma-separated external ids of onboarded patients")
	secret := flag.String("secret", os.Getenv("MM_AUTH_JWT_SECRET"), "Shared session token secret")
	issuer := flag.String("issuer", "", "Session token issuer")
	rounds := flag.Int("r", 1, "Attempts per patient")
	flag.Parse()

	var patients []string
	for _, p := range strings.Split(*patientsStr, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patients = append(patients, p)
		}
	}
	if *slotID == "" || len(patients) == 0 || *secret == "" {
		fmt.Println("usage: booking-race -slot <id> -p <patient,...> -secret <secret>")
		os.Exit(2)
	}

	tokens := make(map[string]string, len(patients))
	for _, p := range patients {
		token, err := mintToken(*secret, *issuer, p)
		if err != nil {
			fmt.Printf("failed to sign token for %s: %v\n", p, err)
			os.Exit(1)
		}
		tokens[p] = token
	}

	fmt.Printf("Racing %d patients for slot %s, %d attempt(s) each\n", len(patients), *slotID, *rounds)

	stats := &RaceStats{
		Attempts:     len(patients) * *rounds,
		StatusCounts: make(map[int]int),
		ErrorCodes:   make(map[int]int),
		Transport:    make(map[string]int),
	}

	results := make(chan AttemptResult, stats.Attempts)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for _, p := range patients {
		for range *rounds {
			wg.Add(1)
			go func(patient string) {
				defer wg.Done()
				<-start
				results <- book(*baseURL, tokens[patient], patient, *slotID)
			}(p)
		}
	}

	startTime := time.Now()
	close(start)
	wg.Wait()
	close(results)
	stats.TotalTime = time.Since(startTime)

	for result := range results {
		stats.record(result)
	}

	os.Exit(printResults(stats))
}

func mintToken(secret, issuer, subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(10 * time.Minute).Unix(),
	}
	if issuer != "" {
		claims["iss"] = issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func book(baseURL, token, patient, slotID string) AttemptResult {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	body, err := json.Marshal(BookingRequest{SlotID: slotID, Description: "race attempt"})
	if err != nil {
		return AttemptResult{Patient: patient, Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/appointments", bytes.NewBuffer(body))
	if err != nil {
		return AttemptResult{Patient: patient, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	startTime := time.Now()
	resp, err := client.Do(req)
	result := AttemptResult{Patient: patient, ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 300 {
		var apiErr ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil {
			result.ErrorCode = apiErr.Code
		}
	}
	return result
}

func (s *RaceStats) record(r AttemptResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	if r.Error != nil {
		s.Transport[r.Error.Error()]++
		return
	}
	s.StatusCounts[r.StatusCode]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	if r.StatusCode == http.StatusCreated {
		s.Booked = append(s.Booked, r.Patient)
	}
	if r.ErrorCode != 0 {
		s.ErrorCodes[r.ErrorCode]++
	}
}

// printResults reports the race and returns the process exit code
func printResults(stats *RaceStats) int {
	var p50, p95, maxTime time.Duration
	if n := len(stats.ResponseTimes); n > 0 {
		slices.Sort(stats.ResponseTimes)
		p50 = stats.ResponseTimes[n*50/100]
		p95 = stats.ResponseTimes[n*95/100]
		maxTime = stats.ResponseTimes[n-1]
	}

	fmt.Println("\n================= RACE RESULTS =================")
	fmt.Printf("Attempts:            %d\n", stats.Attempts)
	fmt.Printf("Total Time:          %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("P50 / P95 / Max:     %v / %v / %v\n", p50, p95, maxTime)

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d %-25s: %d\n", code, http.StatusText(code), count)
	}
	for code, count := range stats.ErrorCodes {
		fmt.Printf("error code %-19d: %d\n", code, count)
	}
	for msg, count := range stats.Transport {
		fmt.Printf("%-40s: %d\n", msg, count)
	}

	fmt.Println("\n================= CONCLUSION =================")
	switch len(stats.Booked) {
	case 1:
		fmt.Printf("✅ Slot booked exactly once, by %s\n", stats.Booked[0])
		return 0
	case 0:
		fmt.Println("⚠️ Nobody booked the slot; check it is AVAILABLE and patients have credits")
		return 1
	default:
		fmt.Printf("❌ Slot booked %d times: %v\n", len(stats.Booked), stats.Booked)
		return 1
	}
}
