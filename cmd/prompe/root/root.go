package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "prompe",
	Short:         "Promp-E — learn prompt writing by drawing",
	Long:          "Promp-E is a guided, multi-stage studio that teaches prompt-writing through drawing and text exercises, with XP, levels and missions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newLoginCmd(),
		newMissionsCmd(),
		newCompleteCmd(),
		newStudioCmd(),
		newGalleryCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
