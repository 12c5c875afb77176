package main

import (
	"github.com/spf13/cobra"

	docsite "github.com/kl543/mbe3-docsite"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated site locally",
	Long:  "Serve the output directory over HTTP to review the generated site before pushing",
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		dir, _ := cmd.Flags().GetString("dir")
		cobra.CheckErr(docsite.Preview(dir, addr))
	},
}

func init() {
	serveCmd.Flags().StringP("addr", "a", ":8080", "Listen address")
	serveCmd.Flags().StringP("dir", "d", ".", "Directory to serve")
}
