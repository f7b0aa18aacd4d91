package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddItemRequest is the add-to-cart payload
type AddItemRequest struct {
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutResponse is the checkout API response
type CheckoutResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ResultBalance string `json:"resultBalance,omitempty"`
}

// TestResult contains metrics for a single checkout attempt
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ShopperStats       map[string]int // Track checkouts per shopper
	ScenarioStats      map[string]int // Track checkouts per scenario
	Lock               sync.Mutex
}

// CartScenario defines what goes in the cart before checkout
type CartScenario struct {
	Name      string // For stats tracking
	ProductID uint64
	Quantity  int
}

// shopper is a logged-in account with its own cookie jar
type shopper struct {
	email  string
	client *http.Client
}

func main() {

	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of checkouts to run")
	emailsStr := flag.String("emails", "marcus@example.com,jasmine@example.com", "Comma-separated shopper emails to distribute load across")
	password := flag.String("password", "sneakerhead", "Password shared by the shopper accounts")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between checkouts in milliseconds")
	flag.Parse()

	// Parse shopper emails
	var emails []string
	for _, email := range strings.Split(*emailsStr, ",") {
		email = strings.TrimSpace(email)
		if email != "" {
			emails = append(emails, email)
		}
	}

	if len(emails) == 0 {
		fmt.Println("No shopper emails provided")
		return
	}

	// Log every shopper in up front so workers only measure the
	// cart and checkout calls
	var shoppers []*shopper
	for _, email := range emails {
		s, err := login(*baseURL, email, *password)
		if err != nil {
			fmt.Printf("Login failed for %s: %v\n", email, err)
			return
		}
		shoppers = append(shoppers, s)
	}

	// Cart scenarios match the seeded starter catalog
	scenarios := []CartScenario{
		{"Single Cheap", 6, 1},
		{"Single Mid", 3, 1},
		{"Single Premium", 1, 1},
		{"Pair Cheap", 5, 2},
		{"Pair Mid", 4, 2},
		{"Pair Premium", 2, 2},
	}

	fmt.Printf("Load testing checkout across %d shoppers: %v\n", len(emails), emails)
	fmt.Printf("Cart scenarios: %d different combinations\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total checkouts: %d\n", *totalRequests)
	fmt.Printf("Delay between checkouts: %d ms\n", *delayMs)

	// Initialize test statistics
	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		ShopperStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	for _, s := range shoppers {
		stats.ShopperStats[s.email] = 0
	}

	for _, scenario := range scenarios {
		stats.ScenarioStats[scenario.Name] = 0
	}

	// Channel to collect results
	results := make(chan TestResult, *totalRequests)

	// Channel to distribute work
	jobs := make(chan int, *totalRequests)

	// Start worker goroutines
	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, *baseURL, *delayMs, shoppers, scenarios, jobs, results, stats)
		}(i)
	}

	// Fill the jobs channel
	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Start a goroutine to collect results
	go func() {
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime

			if result.ResponseTime < stats.MinResponseTime {
				stats.MinResponseTime = result.ResponseTime
			}
			if result.ResponseTime > stats.MaxResponseTime {
				stats.MaxResponseTime = result.ResponseTime
			}
			stats.Lock.Unlock()
		}
	}()

	// Start the timer
	startTime := time.Now()
	fmt.Println("Test running...")

	// Print progress periodically
	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d checkouts completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	// Wait for all workers to finish
	wg.Wait()
	close(results)
	ticker.Stop()

	// Calculate the total test time
	stats.TotalTime = time.Since(startTime)

	// Print results
	printResults(stats)
}

// login authenticates a shopper and returns a client holding its session cookie
func login(baseURL, email, password string) (*shopper, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: 10 * time.Second,
		Jar:     jar,
	}

	jsonData, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(baseURL+"/auth/login", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	return &shopper{email: email, client: client}, nil
}

func worker(id int, baseURL string, delayMs int, shoppers []*shopper,
	scenarios []CartScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		// Optional delay between checkouts to prevent lock contention storms
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		// Randomly select a shopper
		s := shoppers[rand.Intn(len(shoppers))]

		// Randomly select a cart scenario
		scenario := scenarios[rand.Intn(len(scenarios))]

		// Update stats for which shopper and scenario was selected
		stats.Lock.Lock()
		stats.ShopperStats[s.email]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		// Fill the cart, then time the checkout itself
		if err := addToCart(baseURL, s, scenario); err != nil {
			results <- TestResult{Success: false, Error: err}
			continue
		}

		startTime := time.Now()
		statusCode, err := checkout(baseURL, s)
		responseTime := time.Since(startTime)

		result := TestResult{
			ResponseTime: responseTime,
			StatusCode:   statusCode,
		}

		if err != nil {
			result.Success = false
			result.Error = err
		} else {
			result.Success = (statusCode >= 200 && statusCode < 300)
			if !result.Success {
				result.Error = fmt.Errorf("HTTP status code %d", statusCode)
			}
		}

		results <- result
	}
}

func addToCart(baseURL string, s *shopper, scenario CartScenario) error {
	jsonData, err := json.Marshal(AddItemRequest{
		ProductID: scenario.ProductID,
		Quantity:  scenario.Quantity,
	})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(baseURL+"/cart/items", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("add to cart: HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func checkout(baseURL string, s *shopper) (int, error) {
	req, err := http.NewRequest("POST", baseURL+"/checkout", nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var body CheckoutResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return resp.StatusCode, nil
}

func printResults(stats *TestStats) {
	// Calculate theoretical TPS (ignores actual delays between requests)
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	// Calculate TPS if all checkouts were successful
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	// Calculate average response time
	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	// Calculate percentiles
	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		// Sort the response times
		sortedTimes := make([]time.Duration, len(stats.ResponseTimes))
		copy(sortedTimes, stats.ResponseTimes)

		// Simple bubble sort (OK for small datasets)
		for i := 0; i < len(sortedTimes); i++ {
			for j := i + 1; j < len(sortedTimes); j++ {
				if sortedTimes[i] > sortedTimes[j] {
					sortedTimes[i], sortedTimes[j] = sortedTimes[j], sortedTimes[i]
				}
			}
		}

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	// Print results
	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Checkouts:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Checkouts: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Checkouts:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:      %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful checkouts / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all checkouts were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	// Print shopper distribution
	fmt.Println("\n----------------- SHOPPER DISTRIBUTION -----------------")
	totalShoppers := 0
	for _, count := range stats.ShopperStats {
		totalShoppers += count
	}
	for email, count := range stats.ShopperStats {
		if count > 0 {
			fmt.Printf("%-30s: %d checkouts (%.1f%%)\n", email, count,
				float64(count)/float64(totalShoppers)*100)
		}
	}

	// Print scenario distribution
	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	totalScenarios := 0
	for _, count := range stats.ScenarioStats {
		totalScenarios += count
	}
	for scenario, count := range stats.ScenarioStats {
		if count > 0 {
			fmt.Printf("%-15s: %d checkouts (%.1f%%)\n", scenario, count,
				float64(count)/float64(totalScenarios)*100)
		}
	}

	// Print error distribution if there were errors
	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		fmt.Println("Note: 402 means the shopper ran out of money and 409 means")
		fmt.Println("stock ran out or the shopper hit their own checkout lock")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
