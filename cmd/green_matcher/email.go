package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdant/green-matcher/internal/config"
	"github.com/verdant/green-matcher/internal/mailer"
	"github.com/verdant/green-matcher/internal/report"
)

var (
	emailInvestor  string
	emailDims      string
	emailRecipient string
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Export an investor's match list and email the PDF",
	Long: `Export the ranked match list to PDF and send it to one recipient over
authenticated SMTP. Export and send are independent single attempts: a failed
send leaves the exported PDF in place.`,
	RunE: runEmail,
}

func init() {
	emailCmd.Flags().StringVar(&emailInvestor, "investor", "", "Investor display name (required)")
	emailCmd.Flags().StringVar(&emailDims, "dims", "E,S,G", "ESG dimension filter, comma-separated letters")
	emailCmd.Flags().StringVar(&emailRecipient, "to", "", "Recipient email address (required)")
	_ = emailCmd.MarkFlagRequired("investor")
	_ = emailCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.SMTP.Validate(); err != nil {
		return err
	}

	path, matches, err := exportReport(cmd.Context(), emailInvestor, emailDims, "")
	if err != nil {
		return err
	}

	body, err := report.RenderMarkdown(emailInvestor, matches)
	if err != nil {
		return err
	}

	if err := mailer.New(cfg.SMTP).SendReport(cmd.Context(), emailRecipient, emailInvestor, body, path); err != nil {
		return err
	}

	fmt.Printf("Report %s sent to %s\n", path, emailRecipient)
	return nil
}
