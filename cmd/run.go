/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reox/basicshapes/InputParameters"
	"github.com/reox/basicshapes/types"
)

const exampleFile = `
########################################
Title: "Bending beam"
Body: box
Box:
  Length: 8
  Breadth: 64
  Height: 8
VoxelSize: 0.25
Modulus: 1000
Poisson: 0.3
Load:
  Kind: bending    # area, bending or edge
  Face: north
  BendingAxis: "x"
  Force: 10
Constraint:
  Face: south
  DOFs: ["x", "y", "z"]   # quote axis names, YAML reads a bare y as true
Output:
  File: beam.db
  Format: sqlite   # or yaml
  MidPlane: "z"    # optional
########################################
`

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a test case described by a YAML input file",
	Long: `
Reads a complete load case, body, material, boundary conditions and output,
from a YAML file.

basicshapes run -I case.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			inputFile, _ = cmd.Flags().GetString("inputConditionsFile")
			lc           *InputParameters.LoadCase
		)
		if lc, err = processInput(inputFile); err != nil {
			return
		}
		if !viper.GetBool("quiet") {
			lc.Print()
		}
		_, err = runCase(lc)
		return
	},
}

func processInput(inputFile string) (lc *InputParameters.LoadCase, err error) {
	if len(inputFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("%w: must supply an input parameters file (-I, --inputConditionsFile)",
			types.ErrConfiguration)
		return
	}
	var data []byte
	if data, err = os.ReadFile(inputFile); err != nil {
		return
	}
	lc = &InputParameters.LoadCase{}
	if err = lc.Parse(data); err != nil {
		return nil, err
	}
	if lc.Output.Format == "" {
		lc.Output.Format = viper.GetString("format")
	}
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the load case")
}
