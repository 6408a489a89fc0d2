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

// BoxCmd represents the box command
var BoxCmd = &cobra.Command{
	Use:   "box",
	Short: "Rectangular box of uniform material",
	Long: `
Builds an L x B x H box along x, y, z. Every length must be a whole multiple
of the voxel size.

basicshapes box -L 8 -B 64 -H 8 -v 0.25 --fix south --bending north --bendingAxis x -F 10`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		lc, err := caseFromFlags(cmd, "box")
		if err != nil {
			return
		}
		lc.Box.Length, _ = cmd.Flags().GetFloat64("length")
		lc.Box.Breadth, _ = cmd.Flags().GetFloat64("breadth")
		lc.Box.Height, _ = cmd.Flags().GetFloat64("height")
		_, err = runCase(lc)
		return
	},
}

func init() {
	rootCmd.AddCommand(BoxCmd)
	BoxCmd.Flags().Float64P("length", "L", 1, "extent along x")
	BoxCmd.Flags().Float64P("breadth", "B", 1, "extent along y")
	BoxCmd.Flags().Float64P("height", "H", 1, "extent along z")
	addCaseFlags(BoxCmd)
}
