package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sp94dev/investdom-website/contact/models"
	"github.com/Sp94dev/investdom-website/contact/services"
	"github.com/Sp94dev/investdom-website/contact/validation"
	platformconfig "github.com/Sp94dev/investdom-website/internal/platform/config"
)

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"p"},
	Short:   "Render the notification email for a sample submission",
	Long: `Renders the email the office inbox would receive for the given form
values and prints the headers and HTML body to stdout. Nothing is sent.`,
	Example: `  investdom-api preview --name Anna --email anna@example.com --subject kupno --message "Dzień dobry"`,
	RunE: runPreview,
}

var previewSubmission models.Submission

func init() {
	previewCmd.Flags().StringVar(&previewSubmission.Name, "name", "Jan Kowalski", "Sender name")
	previewCmd.Flags().StringVar(&previewSubmission.Email, "email", "jan@example.com", "Sender email")
	previewCmd.Flags().StringVar(&previewSubmission.Phone, "phone", "", "Sender phone")
	previewCmd.Flags().StringVar(&previewSubmission.Subject, "subject", models.SubjectPurchase, "Subject code (kupno, budowa, remont, inne)")
	previewCmd.Flags().StringVar(&previewSubmission.Message, "message", "Dzień dobry,\nproszę o kontakt.", "Message text")
}

func runPreview(cmd *cobra.Command, args []string) error {
	sub := previewSubmission
	if err := validation.ValidateSubmission(&sub); err != nil {
		return err
	}

	settings := services.Settings{
		From: platformconfig.DefaultContactFrom,
		To:   platformconfig.DefaultContactEmail,
	}
	msg, err := services.Compose(&sub, settings)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "From: %s\n", msg.From)
	fmt.Fprintf(out, "To: %s\n", msg.To[0])
	fmt.Fprintf(out, "Reply-To: %s\n", msg.ReplyTo)
	fmt.Fprintf(out, "Subject: %s\n\n", msg.Subject)
	fmt.Fprintln(out, msg.Body)
	return nil
}
