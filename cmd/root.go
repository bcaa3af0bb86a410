package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordline",
	Short: "Melody accompaniment tools",
	Long:  `Analyzes a monophonic melody in a midi file and generates a chordal accompaniment track for it.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
