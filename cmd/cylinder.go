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
	"github.com/spf13/cobra"
)

// CylinderCmd represents the cylinder command
var CylinderCmd = &cobra.Command{
	Use:   "cylinder",
	Short: "Solid or hollow cylinder with optional platens",
	Long: `
Builds a cylinder of outer diameter D and height H, bored out to diameter d if
d > 0. Base and top platens span the full cross-section and carry the fixed
value 255. The extrusion runs along z unless --axis says otherwise.

basicshapes cylinder -D 11 -d 5 -H 20 --base --top --fix bottom --area top -F -50`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		lc, err := caseFromFlags(cmd, "cylinder")
		if err != nil {
			return
		}
		f := cmd.Flags()
		lc.Cyl.OuterDiameter, _ = f.GetFloat64("outer")
		lc.Cyl.InnerDiameter, _ = f.GetFloat64("inner")
		lc.Cyl.Height, _ = f.GetFloat64("height")
		lc.Cyl.Base, _ = f.GetBool("base")
		lc.Cyl.Top, _ = f.GetBool("top")
		lc.Cyl.Axis, _ = f.GetString("axis")
		_, err = runCase(lc)
		return
	},
}

func init() {
	rootCmd.AddCommand(CylinderCmd)
	CylinderCmd.Flags().Float64P("outer", "D", 1, "outer diameter")
	CylinderCmd.Flags().Float64P("inner", "d", 0, "inner diameter, 0 for a solid cylinder")
	CylinderCmd.Flags().Float64P("height", "H", 1, "height along the extrusion axis")
	CylinderCmd.Flags().Bool("base", false, "add a platen below the body")
	CylinderCmd.Flags().Bool("top", false, "add a platen above the body")
	CylinderCmd.Flags().String("axis", "z", "extrusion axis")
	addCaseFlags(CylinderCmd)
}
