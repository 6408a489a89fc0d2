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

	"github.com/spf13/cobra"

	"github.com/reox/basicshapes/bcs"
	"github.com/reox/basicshapes/output"
)

// InfoCmd represents the info command
var InfoCmd = &cobra.Command{
	Use:   "info <file.db>",
	Short: "Summarize a dataset written in sqlite format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var ds *output.Dataset
		if ds, err = output.ReadSQLite(args[0]); err != nil {
			return
		}
		fmt.Print(summary(ds))
		return
	},
}

func summary(ds *output.Dataset) (s string) {
	s = fmt.Sprintf("Run %s \"%s\"\n", ds.RunID, ds.Title)
	s += fmt.Sprintf("%v\n", ds.Image)
	s += fmt.Sprintf("%8.5f\t\t= Voxel Size\n", ds.VoxelSize)
	s += fmt.Sprintf("%8.5f\t\t= Poisson Ratio\n", ds.Poisson)
	tables := []struct {
		name string
		t    *bcs.Table
	}{{"Loads", ds.Loads}, {"Constraints", ds.Constraints}}
	for _, tb := range tables {
		if tb.t == nil {
			s += fmt.Sprintf("%s: none\n", tb.name)
			continue
		}
		var (
			v    = tb.t.Vector(ds.Image.Shape())
			n, _ = v.Dims()
			f    = bcs.Resultant(v)
		)
		s += fmt.Sprintf("%s: %d entries on %d nodes, %d of %d dofs, resultant x, y, z = %g, %g, %g\n",
			tb.name, tb.t.Len(), len(tb.t.Nodes()), v.NNZ(), n, f[0], f[1], f[2])
	}
	return
}

func init() {
	rootCmd.AddCommand(InfoCmd)
}
