package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okravets/dayline/internal/config"
	"github.com/okravets/dayline/internal/export"
	"github.com/okravets/dayline/internal/store"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a demo agenda to a file",
	Long: `Render the demo task set as an agenda. Task data only exists inside a
running session, so this command always exports the seeded demo set;
use the 'e' key inside the TUI to export your actual session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		st := store.New(nil, nil)
		st.Seed(store.DemoTasks())

		data, err := export.NewExporter(st).Export(cfg.Slots(), exportFormat)
		if err != nil {
			return err
		}

		out := fmt.Sprintf("dayline-demo.%s", exportFormat)
		if len(args) == 1 {
			out = args[0]
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format: pdf, json, csv")
	exportCmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
}
