package rtree

// Search invokes iter for every item whose rect intersects [min, max] (max
// nil denotes a point query). iter returning false terminates the whole
// traversal immediately. min/max passed to iter are fresh slices owned by
// the caller; it is safe to retain them past the callback.
func (tr *Tree[N, T]) Search(min, max []N, iter func(min, max []N, item T) bool) {
	if tr.root == nil {
		return
	}
	target := tr.rectFromMinMax(min, max)
	if !rectIntersects(&target, &tr.rect, tr.dims) {
		return
	}
	nodeSearch(tr.root, &target, tr.dims, iter)
}

func nodeSearch[N number, T any](n *node[N, T], target *Rect[N], dims int, iter func(min, max []N, item T) bool) bool {
	if n.kind == leaf {
		items := n.items()
		for i := 0; i < int(n.count); i++ {
			if !rectIntersects(&n.rects[i], target, dims) {
				continue
			}
			if !iter(rectMinSlice(&n.rects[i], dims), rectMaxSlice(&n.rects[i], dims), items[i]) {
				return false
			}
		}
		return true
	}
	children := n.children()
	for i := 0; i < int(n.count); i++ {
		if !rectIntersects(target, &n.rects[i], dims) {
			continue
		}
		if !nodeSearch(children[i], target, dims, iter) {
			return false
		}
	}
	return true
}

// Scan invokes iter for every item in the tree, in no particular order.
func (tr *Tree[N, T]) Scan(iter func(min, max []N, item T) bool) {
	if tr.root == nil {
		return
	}
	nodeScan(tr.root, tr.dims, iter)
}

func nodeScan[N number, T any](n *node[N, T], dims int, iter func(min, max []N, item T) bool) bool {
	if n.kind == leaf {
		items := n.items()
		for i := 0; i < int(n.count); i++ {
			if !iter(rectMinSlice(&n.rects[i], dims), rectMaxSlice(&n.rects[i], dims), items[i]) {
				return false
			}
		}
		return true
	}
	children := n.children()
	for i := 0; i < int(n.count); i++ {
		if !nodeScan(children[i], dims, iter) {
			return false
		}
	}
	return true
}

func rectMinSlice[N number](r *Rect[N], dims int) []N {
	out := make([]N, dims)
	copy(out, r.Min[:dims])
	return out
}

func rectMaxSlice[N number](r *Rect[N], dims int) []N {
	out := make([]N, dims)
	copy(out, r.Max[:dims])
	return out
}
