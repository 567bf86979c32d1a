package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fdg312/health-tracker/internal/reports"
)

func newReportCmd(with withApp) *cobra.Command {
	var (
		format string
		days   int
		out    string
		upload bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a CSV or PDF report of recent days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				svc := reports.NewService(a.tracker, a.blob, a.clock, a.cfg.ReportsMaxDays, a.cfg.S3.PresignTTLSeconds, a.logger)
				report, err := svc.CreateReport(cmd.Context(), reports.Request{
					Format: strings.ToLower(strings.TrimSpace(format)),
					Days:   days,
					Upload: upload,
				})
				if err != nil {
					return err
				}

				if upload {
					fmt.Fprintf(cmd.OutOrStdout(), "Uploaded %s (%d bytes)\n%s\n", report.ObjectKey, report.SizeBytes, report.DownloadURL)
					return nil
				}
				if out == "-" {
					_, err := cmd.OutOrStdout().Write(report.Data)
					return err
				}
				path := out
				if path == "" {
					path = report.Filename
				}
				if err := os.WriteFile(path, report.Data, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes, %s..%s)\n", path, report.SizeBytes, report.From, report.To)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", reports.FormatCSV, "csv|pdf")
	cmd.Flags().IntVar(&days, "days", reports.DefaultDays, "Number of days ending today (max REPORTS_MAX_DAYS)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, - for stdout (default health-report_<from>_<to>.<format>)")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload to S3 and print a presigned URL")

	cmd.AddCommand(&cobra.Command{
		Use:   "rm OBJECT_KEY",
		Short: "Delete an uploaded report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return with(cmd, func(a *app) error {
				svc := reports.NewService(a.tracker, a.blob, a.clock, a.cfg.ReportsMaxDays, a.cfg.S3.PresignTTLSeconds, a.logger)
				if err := svc.DeleteReport(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	})
	return cmd
}
