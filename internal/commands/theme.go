package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okravets/dayline/internal/models"
	"github.com/okravets/dayline/internal/prefs"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the saved display theme",
	Long: `Without arguments, prints the theme the next session will start with.
With an argument, saves that theme. The theme is the only preference
dayline keeps between sessions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := prefs.DefaultPath()
		if err != nil {
			return err
		}
		themes, err := prefs.Open(path)
		if err != nil {
			return err
		}
		defer themes.Close()

		if len(args) == 0 {
			theme, saved, err := themes.Theme()
			if err != nil {
				return err
			}
			if saved {
				fmt.Println(theme)
			} else {
				fmt.Printf("%s (default, nothing saved yet)\n", theme)
			}
			return nil
		}

		theme, err := models.ParseTheme(args[0])
		if err != nil {
			return err
		}
		if err := themes.SetTheme(theme); err != nil {
			return err
		}
		fmt.Printf("Theme saved: %s\n", theme)
		return nil
	},
}
