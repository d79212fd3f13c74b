package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "rrmreport",
	Short:         "Generate AI-RRM performance reports from a network controller",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagOutput   string
	flagLogo     string
	flagLogLevel string
	flagInsecure bool
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "",
		"output PDF path (default output/airrm_report_<timestamp>.pdf)")
	rootCmd.PersistentFlags().StringVar(&flagLogo, "logo", "",
		"path to a branding logo image (overrides LOGO_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false,
		"disable TLS certificate verification")

	rootCmd.AddCommand(reportCmd, sampleCmd)
}
