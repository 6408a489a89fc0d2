package utils

type Index []int

// NewRange returns rmin, rmin+1, ..., rmax; the range is inclusive
func NewRange(rmin, rmax int) (r Index) {
	if rmax < rmin {
		return Index{}
	}
	r = make(Index, rmax-rmin+1)
	for i := range r {
		r[i] = i + rmin
	}
	return
}
