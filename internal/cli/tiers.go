package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
	"github.com/steliosvliaros/setup-ptoject-ps/internal/tier"
)

var tiersJSON bool

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the built-in scaffold tiers",
	Long:  `List the built-in tiers with the number of files and directories each one lays down.`,
	RunE:  runTiers,
}

func init() {
	tiersCmd.Flags().BoolVar(&tiersJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(tiersCmd)
}

// tierEntry describes one tier for display.
type tierEntry struct {
	Name    string `json:"name"`
	Files   int    `json:"files"`
	Dirs    int    `json:"dirs"`
	Summary string `json:"summary"`
}

func runTiers(cmd *cobra.Command, args []string) error {
	// Entry counts depend only on the tier, so any context works for sizing.
	sample := scaffold.NewContext("sample-project", "3.11", "", nil)

	var entries []tierEntry
	for _, t := range tier.Builtin() {
		built, err := t.Entries(sample)
		if err != nil {
			return fmt.Errorf("building tier %s: %w", t.Name, err)
		}

		e := tierEntry{Name: t.Name, Summary: t.Summary}
		for _, b := range built {
			if b.Kind == scaffold.KindDirectory {
				e.Dirs++
			} else {
				e.Files++
			}
		}
		entries = append(entries, e)
	}

	if tiersJSON {
		return printTiersJSON(cmd, entries)
	}
	return printTiersTable(cmd, entries)
}

func printTiersTable(cmd *cobra.Command, entries []tierEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TIER\tFILES\tDIRS\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", e.Name, e.Files, e.Dirs, e.Summary)
	}
	return w.Flush()
}

func printTiersJSON(cmd *cobra.Command, entries []tierEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
