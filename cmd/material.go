package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosap/internal/diagram"
	"github.com/alexiusacademia/gosap/internal/nscp"
)

var (
	materialName string
	materialFc   float64
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Define material properties in the model",
}

var materialNSCPCmd = &cobra.Command{
	Use:   "nscp",
	Short: "Define an NSCP 2015 normal weight concrete",
	Long: `Define a concrete material from its specified compressive strength.

The properties follow NSCP 2015:
  - Section 419.2.2.1: Ec = 4700 √f'c
  - Section 410.2.7.3: β1 for the stress block
  - Poisson's ratio 0.2, unit weight 23.6 kN/m³

Values are converted into the present units of the model, which must be
newton based SI.

Examples:
  gosap material nscp --name C28 --fc 28
  gosap material nscp --name C35 --fc 35 --dry-run`,
	RunE: runMaterialNSCP,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	materialCmd.AddCommand(materialNSCPCmd)

	materialNSCPCmd.Flags().StringVarP(&materialName, "name", "n", "", "Material name [required]")
	materialNSCPCmd.Flags().Float64Var(&materialFc, "fc", 28, "Concrete compressive strength f'c (MPa)")
	materialNSCPCmd.MarkFlagRequired("name")
}

func runMaterialNSCP(cmd *cobra.Command, args []string) (err error) {
	c, err := nscp.NewConcrete(materialFc)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(s, &err)
	m, err := s.bindModel(state.cfg.ProgramName())
	if err != nil {
		return err
	}
	if err := nscp.DefineConcrete(m.sapModel, m.material, materialName, c); err != nil {
		return fmt.Errorf("define %s: %w", materialName, err)
	}

	if jsonOutput() {
		return writeJSON(map[string]any{"name": materialName, "concrete": c})
	}
	fmt.Print(diagram.DrawSummaryBox("CONCRETE "+materialName+" - NSCP 2015", []string{
		fmt.Sprintf("f'c  = %.1f MPa", c.Fc),
		fmt.Sprintf("Ec   = %.0f MPa", c.Ec),
		fmt.Sprintf("ν    = %.2f", c.Poisson),
		fmt.Sprintf("α    = %.2e /°C", c.Alpha),
		fmt.Sprintf("γ    = %.1f kN/m³", c.UnitWeight),
		fmt.Sprintf("β1   = %.3f", c.Beta1),
	}))
	return nil
}
