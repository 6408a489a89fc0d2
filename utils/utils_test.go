package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				histo[kMax-kMin]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		for n := 64; n < 2000; n++ {
			histo := getHisto(n, 12)
			assert.LessOrEqual(t, len(histo), 2)
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Buckets are contiguous and cover the whole range
		for maxIndex := 10; maxIndex < 500; maxIndex++ {
			pm := NewPartitionMap(5, maxIndex)
			assert.Equal(t, 0, pm.Partitions[0][0])
			assert.Equal(t, maxIndex, pm.Partitions[4][1])
			for bn := 1; bn < 5; bn++ {
				kMin, _ := pm.GetBucketRange(bn)
				_, kMax := pm.GetBucketRange(bn - 1)
				assert.Equal(t, kMax, kMin)
			}
		}
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, Index{-1, 0, 1}, NewRange(-1, 1))
	assert.Equal(t, Index{4}, NewRange(4, 4))
	assert.Len(t, NewRange(1, 0), 0)
	for p := -9; p <= 9; p++ {
		assert.InEpsilon(t, math.Pow(1.7, float64(p)), POW(1.7, p), 1.e-12)
	}
	assert.True(t, IsNan(math.NaN()))
	assert.True(t, IsNan([]float64{1, math.NaN()}))
	assert.False(t, IsNan([]float64{1, 2}))
	assert.False(t, IsNan("NaN"))
	assert.Contains(t, GetMemUsage(), "MiB")
}
