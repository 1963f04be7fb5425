// Command healthcheck probes the service liveness route and exits 0 on
// HTTP 200, nonzero otherwise. It stands in for curl in the container
// HEALTHCHECK so the final image needs no shell or extra tools.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

// probeTimeout matches the orchestrator healthcheck timeout.
const probeTimeout = 3 * time.Second

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	url := fmt.Sprintf("http://127.0.0.1:%s/health", port)

	if err := probe(url, probeTimeout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// probe issues a GET against the liveness route and reports any non-200
// outcome as an error.
func probe(url string, timeout time.Duration) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health probe returned status %d", resp.StatusCode)
	}
	return nil
}
