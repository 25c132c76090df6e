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
	"io/ioutil"
	"os"

	"github.com/notargets/gospectral/InputParameters"
	"github.com/notargets/gospectral/model_problems/Helmholtz2D"
	"github.com/notargets/gospectral/model_problems/PoissonCurv"
	"github.com/spf13/cobra"
)

type ModelType2D uint

const (
	M_HelmholtzTorus ModelType2D = iota
	M_PoissonAnnulus
)

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional model problems on curvilinear surfaces",
	Long: `
Solves Helmholtz on a torus surface or Poisson on a sheared annulus, both
with one periodic direction eliminated per wavenumber,

gospectral 2D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("2D called")
		mr, _ := cmd.Flags().GetInt("model")
		n, _ := cmd.Flags().GetInt("n")
		nPer, _ := cmd.Flags().GetInt("nPeriodic")
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		delta, _ := cmd.Flags().GetFloat64("delta")
		if ipFile, _ := cmd.Flags().GetString("inputParametersFile"); len(ipFile) != 0 {
			ip := parseInputFile(ipFile)
			n, nPer, alpha, delta = ip.N, ip.NPeriodic, ip.Alpha, ip.Delta
			switch ip.Problem {
			case "Helmholtz2D":
				mr = int(M_HelmholtzTorus)
			case "PoissonCurv":
				mr = int(M_PoissonAnnulus)
			default:
				fmt.Printf("problem %q is not a 2D model\n", ip.Problem)
				os.Exit(1)
			}
		}
		switch ModelType2D(mr) {
		case M_HelmholtzTorus:
			Helmholtz2D.NewHelmholtz(nPer, n, alpha).Run()
		case M_PoissonAnnulus:
			PoissonCurv.NewPoisson(nPer, n, delta).Run()
		default:
			fmt.Printf("unknown model %d\n", mr)
			os.Exit(1)
		}
	},
}

func parseInputFile(fileName string) (ip *InputParameters.SpectralParameters) {
	var (
		data []byte
		err  error
	)
	if data, err = ioutil.ReadFile(fileName); err != nil {
		fmt.Printf("unable to read input parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	ip = &InputParameters.SpectralParameters{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("unable to parse input parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().IntP("model", "m", int(M_HelmholtzTorus), "model to run: 0 = Helmholtz on a torus, 1 = Poisson on a sheared annulus")
	TwoDCmd.Flags().IntP("n", "n", 81, "modes along the non-periodic (dense) direction")
	TwoDCmd.Flags().Int("nPeriodic", 16, "modes along the periodic direction")
	TwoDCmd.Flags().Float64("alpha", 1.0, "Helmholtz coefficient")
	TwoDCmd.Flags().Float64("delta", 0.2, "shear of the annulus mapping")
	TwoDCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of input parameters, overrides flags")
}
