package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file.
// ghodss/yaml converts YAML to JSON before unmarshaling, so the field tags
// are json tags. The dense-axis mode count is keyed "NDense": a bare "N"
// key is a YAML 1.1 boolean and would never reach the field.
type SpectralParameters struct {
	Title     string  `json:"Title"`
	Problem   string  `json:"Problem"` // Poisson1D, Helmholtz2D, PoissonCurv, Stokes3D
	N         int     `json:"NDense"`  // modes along the dense axis
	NPeriodic int     `json:"NPeriodic"`
	Alpha     float64 `json:"Alpha"`
	Delta     float64 `json:"Delta"`
}

func (sp *SpectralParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, sp); err != nil {
		return err
	}
	return sp.validate()
}

func (sp *SpectralParameters) validate() error {
	switch sp.Problem {
	case "Poisson1D", "Helmholtz2D", "PoissonCurv", "Stokes3D":
	case "":
		return fmt.Errorf("no Problem specified")
	default:
		return fmt.Errorf("unknown Problem %q", sp.Problem)
	}
	if sp.N < 4 {
		return fmt.Errorf("N = %d is too small", sp.N)
	}
	if sp.NPeriodic == 0 {
		sp.NPeriodic = sp.N
	}
	return nil
}

func (sp *SpectralParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t= Problem\n", sp.Problem)
	fmt.Printf("[%d]\t\t\t= NDense\n", sp.N)
	fmt.Printf("[%d]\t\t\t= NPeriodic\n", sp.NPeriodic)
	fmt.Printf("%8.5f\t\t= Alpha\n", sp.Alpha)
	fmt.Printf("%8.5f\t\t= Delta\n", sp.Delta)
}
