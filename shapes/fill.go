package shapes

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/reox/basicshapes/types"
)

const maxRedraws = 100

// FillNormal replaces the value of every material voxel (plates excepted) with
// a sample of N(mean, sigma), both finite. Non-positive samples are redrawn, a voxel keeps
// the mean if no positive sample turns up.
func FillNormal(g *Grid, mean, sigma float64, seed uint64) (err error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) || mean <= 0 ||
		math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		err = fmt.Errorf("%w: normal fill needs mean > 0 and sigma >= 0, have %v, %v",
			types.ErrConfiguration, mean, sigma)
		return
	}
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
	for i, v := range g.Data {
		if v == 0 || v == PlateValue {
			continue
		}
		val := mean
		for n := 0; n < maxRedraws; n++ {
			if s := dist.Rand(); s > 0 {
				val = s
				break
			}
		}
		g.Data[i] = val
	}
	return
}

// FillNoise is the coherent-noise material fill. No noise generator is
// compiled into this build.
func FillNoise(g *Grid, mean, amplitude, scale float64, seed uint64) error {
	return fmt.Errorf("%w: noise fill requires a noise generator, none is available",
		types.ErrCapabilityUnavailable)
}
