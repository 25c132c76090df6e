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

	"github.com/notargets/gospectral/model_problems/Stokes3D"
	"github.com/spf13/cobra"
)

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Three dimensional coupled Stokes problem",
	Long: `
Solves the Stokes equations in a doubly periodic channel as one block
system per wavenumber pair,

gospectral 3D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("3D called")
		n, _ := cmd.Flags().GetInt("n")
		Stokes3D.NewStokes(n).Run()
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().IntP("n", "n", 20, "modes per direction")
}
