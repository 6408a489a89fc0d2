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
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reox/basicshapes/InputParameters"
	"github.com/reox/basicshapes/bcs"
	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/output"
	"github.com/reox/basicshapes/types"
	"github.com/reox/basicshapes/utils"
)

// addCaseFlags registers the flags shared by every body command
func addCaseFlags(cmd *cobra.Command) {
	cmd.Flags().Float64P("voxelSize", "v", 1, "edge length of one voxel, physical units")
	cmd.Flags().Float64P("modulus", "E", 1000, "material value of every voxel, must be > 0")
	cmd.Flags().Float64("poisson", 0.3, "Poisson ratio stored with the dataset")
	cmd.Flags().String("area", "", "face carrying a uniform area load: north, south, east, west, top, bottom")
	cmd.Flags().String("bending", "", "face carrying a bending moment")
	cmd.Flags().String("bendingAxis", "x", "axis the bending moment acts about")
	cmd.Flags().String("edge", "", "edge carrying a line load, e.g. topnorth")
	cmd.Flags().String("direction", "", "dof of the edge load (x, y, z), or of the area load (default face normal)")
	cmd.Flags().Float64P("force", "F", 0, "total force of the load")
	cmd.Flags().String("fix", "", "face whose material nodes are fixed")
	cmd.Flags().StringSlice("dofs", []string{"x", "y", "z"}, "fixed dofs of the constrained face")
	cmd.Flags().String("fill", "none", "material fill: none, normal or noise")
	cmd.Flags().Float64("sigma", 0, "standard deviation of the normal fill")
	cmd.Flags().Uint64("seed", 1, "random seed of the material fill")
	cmd.Flags().StringP("output", "o", "", "output file (default <body>.<format>)")
	cmd.Flags().String("midPlane", "", "also write the mid-plane normal to this axis as TIFF")
}

// caseFromFlags collects the shared flags into a load case. At most one of
// --area, --bending and --edge may be given.
func caseFromFlags(cmd *cobra.Command, body string) (lc *InputParameters.LoadCase, err error) {
	var (
		f     = cmd.Flags()
		loads []string
	)
	lc = &InputParameters.LoadCase{Title: body, Body: body}
	lc.Voxel, _ = f.GetFloat64("voxelSize")
	lc.Value, _ = f.GetFloat64("modulus")
	lc.Nu, _ = f.GetFloat64("poisson")
	lc.Fill.Mode, _ = f.GetString("fill")
	lc.Fill.Sigma, _ = f.GetFloat64("sigma")
	lc.Fill.Seed, _ = f.GetUint64("seed")
	lc.Output.File, _ = f.GetString("output")
	lc.Output.MidPlane, _ = f.GetString("midPlane")
	lc.Output.Format = viper.GetString("format")

	load := &InputParameters.LoadParams{}
	load.Force, _ = f.GetFloat64("force")
	load.Direction, _ = f.GetString("direction")
	if face, _ := f.GetString("area"); face != "" {
		load.Kind, load.Face = "area", face
		loads = append(loads, "--area")
	}
	if face, _ := f.GetString("bending"); face != "" {
		load.Kind, load.Face = "bending", face
		load.BendingAxis, _ = f.GetString("bendingAxis")
		loads = append(loads, "--bending")
	}
	if edge, _ := f.GetString("edge"); edge != "" {
		load.Kind, load.Edge = "edge", edge
		loads = append(loads, "--edge")
	}
	switch {
	case len(loads) > 1:
		return nil, fmt.Errorf("%w: %s are mutually exclusive", types.ErrConfiguration, strings.Join(loads, ", "))
	case len(loads) == 1:
		lc.Load = load
	}
	if face, _ := f.GetString("fix"); face != "" {
		lc.Fixed = &InputParameters.FixedParams{Face: face}
		lc.Fixed.DOFs, _ = f.GetStringSlice("dofs")
	}
	return
}

/*
runCase executes a load case end to end:

  - names are validated and turned into a boundary condition request
  - the body is built and filled
  - loads and constraints are generated
  - the dataset and the optional mid-plane image are written
*/
func runCase(lc *InputParameters.LoadCase) (ds *output.Dataset, err error) {
	var r *bcs.Request
	if r, err = lc.Request(); err != nil {
		return
	}
	var w output.Writer
	if w, err = output.NewWriter(lc.Output.Format); err != nil {
		return
	}
	var midPlane mesh.Axis
	if lc.Output.MidPlane != "" {
		if midPlane, err = mesh.ParseAxis(lc.Output.MidPlane); err != nil {
			return
		}
	}
	g, err := lc.Build()
	if err != nil {
		return
	}
	loads, constraints, err := bcs.Apply(g, r)
	if err != nil {
		return
	}
	ds = output.NewDataset(lc.Title, g, lc.Nu, lc.Voxel, loads, constraints)
	file := outputFile(lc)
	if err = w.Write(file, ds); err != nil {
		return nil, err
	}
	if lc.Output.MidPlane != "" {
		tif := strings.TrimSuffix(file, filepath.Ext(file)) + "_mid.tif"
		if err = output.WriteMidPlane(tif, g, midPlane); err != nil {
			return nil, err
		}
		log.Printf("mid-plane normal to %s: %s\n", midPlane, tif)
	}
	log.Println(utils.GetMemUsage())
	return
}

func outputFile(lc *InputParameters.LoadCase) string {
	if lc.Output.File != "" {
		return lc.Output.File
	}
	switch strings.ToLower(lc.Output.Format) {
	case "yaml", "yml":
		return strings.ToLower(lc.Body) + ".yaml"
	}
	return strings.ToLower(lc.Body) + ".db"
}
