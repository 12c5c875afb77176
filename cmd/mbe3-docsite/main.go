package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	docsite "github.com/kl543/mbe3-docsite"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "mbe3-docsite",
	Short: "Build the MBE3 heating-stage docs site",
	Long:  "Scan data/ for experiment runs and render the run gallery, notebook links and figure wall to index.html",
	Run: func(cmd *cobra.Command, args []string) {
		app := docsite.New(configFromEnv(), docsite.WithRunIndex(".docsite/index.db"))
		if err := app.Build(context.Background()); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println(app.CompletionMessage())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mbe3-docsite version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mbe3-docsite %s\n", version)
	},
}

// configFromEnv seeds the repo identifiers from the GitHub Actions
// environment when present; they only affect external links and fall back
// to fixed defaults. No other configuration comes from the environment.
func configFromEnv() docsite.SiteConfig {
	return docsite.SiteConfig{
		Repo:   os.Getenv("GITHUB_REPOSITORY"),
		Branch: os.Getenv("GITHUB_REF_NAME"),
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
