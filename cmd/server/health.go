package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health status of a running server",
	Long: `Calls GET /health on a running server and exits non-zero when it is
unreachable or unhealthy. Used by container health checks.`,
	RunE: runHealthCheck,
}

var (
	healthURL     string
	healthTimeout time.Duration
)

func init() {
	healthCmd.Flags().StringVarP(&healthURL, "url", "u", "http://localhost:8080/health", "Health endpoint URL")
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 3*time.Second, "Timeout for health checks")
}

type healthStatus struct {
	Status          string `json:"status"`
	EmailConfigured bool   `json:"emailConfigured"`
}

func runHealthCheck(cmd *cobra.Command, args []string) error {
	client := &http.Client{Timeout: healthTimeout}

	resp, err := client.Get(healthURL)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	var status healthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return fmt.Errorf("invalid health response: %w", err)
	}
	if status.Status != "ok" {
		return fmt.Errorf("server status %q", status.Status)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "status=%s emailConfigured=%t\n", status.Status, status.EmailConfigured)
	return nil
}
