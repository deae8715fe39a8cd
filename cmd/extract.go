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

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/cae-tools/astermat/InputParameters"
	"github.com/cae-tools/astermat/matrices"
)

type ModelExtract struct {
	InputDir   string
	ParamsFile string
	Agnostic   bool
	Profile    bool
}

// ExtractCmd represents the extract command
var ExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract node/element/material matrices from a case directory",
	Long: `
Reads the first .comm and mesh files (sorted name order) from the input
directory and builds the node, element and material matrices.

astermat extract -d Input`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		me := &ModelExtract{}
		if me.InputDir, err = cmd.Flags().GetString("inputDir"); err != nil {
			panic(err)
		}
		if me.ParamsFile, err = cmd.Flags().GetString("paramsFile"); err != nil {
			panic(err)
		}
		me.Agnostic, _ = cmd.Flags().GetBool("agnostic")
		me.Profile, _ = cmd.Flags().GetBool("profile")

		ep := processExtractInput(cmd, me)
		RunExtract(me, ep)
	},
}

func processExtractInput(cmd *cobra.Command, me *ModelExtract) (ep *InputParameters.ExtractParameters) {
	ep = &InputParameters.ExtractParameters{
		InputDir:         me.InputDir,
		MaterialAgnostic: me.Agnostic,
	}
	if len(me.ParamsFile) == 0 {
		return
	}

	data, err := os.ReadFile(me.ParamsFile)
	if err != nil {
		panic(err)
	}
	if err = ep.Parse(data); err != nil {
		panic(err)
	}
	// Explicit flags override the parameters file.
	if cmd.Flags().Changed("inputDir") {
		ep.InputDir = me.InputDir
	}
	if cmd.Flags().Changed("agnostic") {
		ep.MaterialAgnostic = me.Agnostic
	}
	ep.Print()
	return
}

func init() {
	rootCmd.AddCommand(ExtractCmd)
	ExtractCmd.Flags().StringP("inputDir", "d", "Input", "Case directory containing one .comm and one mesh file")
	ExtractCmd.Flags().StringP("paramsFile", "I", "", "YAML file for extraction parameters like:\n\t- InputDir\n\t- MaterialAgnostic")
	ExtractCmd.Flags().BoolP("agnostic", "a", false, "skip material parsing, write raw family tags into the element matrix")
	ExtractCmd.Flags().Bool("profile", false, "generate a runtime profile of the extraction")
}

func RunExtract(me *ModelExtract, ep *InputParameters.ExtractParameters) {
	if me.Profile {
		defer profile.Start().Stop()
	}

	cm, err := matrices.ExtractCase(ep.InputDir, ep.MaterialAgnostic)
	if err != nil {
		// Discovery problems get a clean message; everything else is a
		// fatal internal condition.
		if errors.Is(err, matrices.ErrMissingDir) ||
			errors.Is(err, matrices.ErrNoCommFile) ||
			errors.Is(err, matrices.ErrNoMeshFile) {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		panic(err)
	}

	printReport(cm)
}

func printReport(cm *matrices.CaseMatrices) {
	nodeRows, nodeCols := cm.Node.Dims()
	fmt.Printf("Found command file : %s\n", filepath.Base(cm.CommFile))
	fmt.Printf("Found mesh file    : %s\n", filepath.Base(cm.MeshFile))
	fmt.Printf("Mesh summary       : %d points, %d cell blocks\n", cm.NumPoints, cm.NumCellBlocks)
	fmt.Printf("Node matrix shape  : (%d, %d)\n", nodeRows, nodeCols)
	fmt.Printf("Element matrix shape: (%d, %d)\n", len(cm.Elem), 6)
	if len(cm.Materials) == 0 {
		return
	}
	materRows, materCols := cm.Mater.Dims()
	fmt.Printf("Material matrix shape: (%d, %d)\n", materRows, materCols)
	for i, m := range cm.Materials {
		fmt.Printf("  %s: E=%v, nu=%v\n", m.Name, cm.Mater.At(i, 0), cm.Mater.At(i, 1))
	}
}
