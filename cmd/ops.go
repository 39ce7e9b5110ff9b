package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosap/internal/sap/schema"
)

var opsCmd = &cobra.Command{
	Use:   "ops [facade]",
	Short: "List the operations the configured generation offers",
	Long: `List every operation known for the configured interface generation,
with its parameters and result type. Parameters marked ref: or array: are
written back by the application.

Examples:
  # Everything v14 offers
  gosap ops -g v14

  # Only the material property operations
  gosap ops PropMaterial`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOps,
}

func init() {
	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	s, err := schema.Load()
	if err != nil {
		return err
	}
	entries := s.Ops(state.gen)
	if len(args) == 1 {
		f, ok := s.Facade(args[0])
		if !ok {
			return fmt.Errorf("unknown facade %q", args[0])
		}
		var only []schema.Entry
		for _, e := range entries {
			if e.Facade == f.Name {
				only = append(only, e)
			}
		}
		entries = only
	}

	if jsonOutput() {
		return writeJSON(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OPERATION\tPARAMETERS\tRESULT")
	for _, e := range entries {
		name := e.Facade + "." + e.Op
		if e.Deprecated {
			name += " (deprecated)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(e.Params, ", "), e.Result)
	}
	return w.Flush()
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
