package utils

func POW(x float64, p int) (y float64) {
	if p < 0 {
		return 1. / POW(x, -p)
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	return
}

func ConstArray(val float64, n int) (r []float64) {
	r = make([]float64, n)
	for i := range r {
		r[i] = val
	}
	return
}
