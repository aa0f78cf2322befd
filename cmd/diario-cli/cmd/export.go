package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"diario/internal/application/commands"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal as CSV",
	Long: `Export the whole journal as a CSV file, one row per logged day,
sorted by date.

By default the file is written into the journal directory; --out writes
it elsewhere. With --stdout the CSV is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toStdout, _ := cmd.Flags().GetBool("stdout")
		if toStdout {
			text, err := commands.NewBuildCSVCommand(GetJournal()).Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		}

		outDir := exportOut
		if outDir == "" {
			outDir = journalDir
		}
		result, err := commands.NewExportCSVCommand(GetJournal(), outDir).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d rows to %s\n", result.Rows, result.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "directory to write the CSV into")
	exportCmd.Flags().Bool("stdout", false, "print the CSV instead of writing a file")
	rootCmd.AddCommand(exportCmd)
}
