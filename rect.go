package rtree

// Pure rect algebra over the first dims coordinates of a Rect[N]. These are
// free functions (not methods) because every call site already has a
// Tree's dims in hand, and passing it explicitly keeps the functions
// testable in isolation without constructing a Tree.

func rectExpand[N number](r, other *Rect[N], dims int) {
	for i := 0; i < dims; i++ {
		if other.Min[i] < r.Min[i] {
			r.Min[i] = other.Min[i]
		}
		if other.Max[i] > r.Max[i] {
			r.Max[i] = other.Max[i]
		}
	}
}

func rectArea[N number](r *Rect[N], dims int) N {
	var result N = 1
	for i := 0; i < dims; i++ {
		result *= r.Max[i] - r.Min[i]
	}
	return result
}

// rectUnionedArea returns the area of the smallest rect containing both
// r and other, without mutating either.
func rectUnionedArea[N number](r, other *Rect[N], dims int) N {
	var result N = 1
	for i := 0; i < dims; i++ {
		result *= (max0(r.Max[i], other.Max[i]) - min0(r.Min[i], other.Min[i]))
	}
	return result
}

// rectContains reports whether other is fully contained within r.
func rectContains[N number](r, other *Rect[N], dims int) bool {
	for i := 0; i < dims; i++ {
		if other.Min[i] < r.Min[i] || other.Max[i] > r.Max[i] {
			return false
		}
	}
	return true
}

func rectContainsPoint[N number](r *Rect[N], point []N, dims int) bool {
	for i := 0; i < dims; i++ {
		if point[i] < r.Min[i] || point[i] > r.Max[i] {
			return false
		}
	}
	return true
}

func rectIntersects[N number](r, other *Rect[N], dims int) bool {
	for i := 0; i < dims; i++ {
		if other.Min[i] > r.Max[i] || other.Max[i] < r.Min[i] {
			return false
		}
	}
	return true
}

// rectOnEdge reports whether r touches either boundary of other on any
// axis, order-based (NaN-safe) like rectEquals, not a bitwise compare.
func rectOnEdge[N number](r, other *Rect[N], dims int) bool {
	for i := 0; i < dims; i++ {
		if feq(r.Min[i], other.Min[i]) || feq(r.Max[i], other.Max[i]) {
			return true
		}
	}
	return false
}

// rectEquals is the order-based, NaN-safe equality used for shrink
// detection: !(x<y || x>y), distinct from rectEqualsBin's bitwise compare
// used on the delete path.
func rectEquals[N number](r, other *Rect[N], dims int) bool {
	for i := 0; i < dims; i++ {
		if !feq(r.Min[i], other.Min[i]) || !feq(r.Max[i], other.Max[i]) {
			return false
		}
	}
	return true
}

func rectEqualsBin[N number](r, other *Rect[N], dims int) bool {
	for i := 0; i < dims; i++ {
		if r.Min[i] != other.Min[i] || r.Max[i] != other.Max[i] {
			return false
		}
	}
	return true
}

func rectLargestAxis[N number](r *Rect[N], dims int) int {
	axis := 0
	length := r.Max[0] - r.Min[0]
	for i := 1; i < dims; i++ {
		l := r.Max[i] - r.Min[i]
		if l > length {
			length = l
			axis = i
		}
	}
	return axis
}

func feq[N number](a, b N) bool {
	return !(a < b || a > b)
}

func min0[N number](a, b N) N {
	if a < b {
		return a
	}
	return b
}

func max0[N number](a, b N) N {
	if a > b {
		return a
	}
	return b
}
