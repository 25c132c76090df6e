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
	"fmt"

	"github.com/notargets/gospectral/model_problems/Poisson1D"
	"github.com/spf13/cobra"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional model problems",
	Long: `
Solves the Poisson equation on [-1,1] with homogeneous Dirichlet conditions
using a Chebyshev composite basis,

gospectral 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("1D called")
		n, _ := cmd.Flags().GetInt("n")
		graph, _ := cmd.Flags().GetBool("graph")
		Poisson1D.NewPoisson(n).Run(graph)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().IntP("n", "n", 32, "number of Chebyshev modes")
	OneDCmd.Flags().BoolP("graph", "g", false, "display a graph of the solution")
}
