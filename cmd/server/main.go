package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs the API server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "investdom-api",
	Short: "InvestDom website API and contact form relay",
	Long: `investdom-api serves the InvestDom website together with the contact
form endpoint, which forwards each submission to the office inbox through Resend.

Configuration is read from the environment (and a .env file when present):
  RESEND_API_KEY    provider credential, the form answers 500 without it
  CONTACT_EMAIL     recipient inbox
  SERVER_PORT       listen port (default 8080)`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
