package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosap/internal/com"
	"github.com/alexiusacademia/gosap/internal/sap"
	"github.com/alexiusacademia/gosap/internal/version"
)

var versionRemote bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosap",
	Long: `Print the version number of gosap.

With --remote, also ask the application for its version and report which
interface generation it implements.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionRemote, "remote", false, "Also query the application version")
}

func runVersion(cmd *cobra.Command, args []string) (err error) {
	fmt.Println(version.String())
	if !versionRemote {
		return nil
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

	ver, num := com.NewRef(""), com.NewRef(0.0)
	status, err := m.sapModel.GetVersion(ver, num)
	if err := sap.Check("SapModel.GetVersion", status, err); err != nil {
		return err
	}
	gen, err := sap.GenerationOf(ver.Get())
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (build %g), interface %s\n", state.cfg.ProgramName(), ver.Get(), num.Get(), gen)

	if gen != state.gen {
		state.logger.Warn("Configured generation differs from the program", "configured", state.gen, "program", gen)
	}
	if gen >= sap.V15 && state.gen >= sap.V15 {
		obj, err := sap.NewV15(s.conn, state.cfg.ProgramName())
		if err != nil {
			return err
		}
		api, err := obj.GetOAPIVersionNumber()
		if err != nil {
			return err
		}
		fmt.Printf("Automation interface version %g\n", api)
	}
	return nil
}
