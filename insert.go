package rtree

// Insert adds item under the rect [min, max]. max may be nil, denoting a
// degenerate point rect (max := min). Insert reports false only on
// allocator failure; the tree is left in a consistent (if partially
// COW-copied) state in that case.
func (tr *Tree[N, T]) Insert(min, max []N, item T) bool {
	ir := tr.rectFromMinMax(min, max)
	for {
		if tr.root == nil {
			root, ok := tr.newNode(leaf)
			if !ok {
				return false
			}
			tr.root = root
			tr.rect = ir
			tr.height = 1
		}
		split, ok := tr.nodeInsert(&tr.root, &ir, item, 0)
		if !ok {
			return false
		}
		if !split {
			rectExpand(&tr.rect, &ir, tr.dims)
			tr.count++
			return true
		}
		// The root was completely full: split it and wrap both halves in
		// a brand-new branch root, then loop to retry the insert, which
		// will now find room.
		newRoot, ok := tr.newNode(branch)
		if !ok {
			return false
		}
		right, ok := tr.splitNode(&tr.rect, tr.root)
		if !ok {
			tr.alloc.Release(newRoot)
			return false
		}
		newRoot.rects[0] = rectCalc(tr.root, tr.dims)
		newRoot.rects[1] = rectCalc(right, tr.dims)
		children := newRoot.children()
		children[0] = tr.root
		children[1] = right
		newRoot.count = 2
		tr.root = newRoot
		tr.height++
	}
}

// nodeInsert descends to a leaf and places (ir, item), bubbling a split
// signal back up. When a leaf or branch is already at capacity it reports
// split=true without modifying anything; the caller is responsible for
// splitting the child and retrying at the same depth (see the branch case
// below, and Insert's root-level retry loop).
func (tr *Tree[N, T]) nodeInsert(cn **node[N, T], ir *Rect[N], item T, depth int) (split, ok bool) {
	n, ok := tr.cowLoad(cn)
	if !ok {
		return false, false
	}
	if n.kind == leaf {
		if int(n.count) == tr.maxItems {
			return true, true
		}
		idx := int(n.count)
		n.rects[idx] = *ir
		n.items()[idx] = item
		n.count++
		return false, true
	}

	i := tr.choose(n, ir, depth)
	children := n.children()
	childSplit, ok := tr.nodeInsert(&children[i], ir, item, depth+1)
	if !ok {
		return false, false
	}
	if !childSplit {
		rectExpand(&n.rects[i], ir, tr.dims)
		return false, true
	}
	if int(n.count) == tr.maxItems {
		return true, true
	}
	right, ok := tr.splitNode(&n.rects[i], children[i])
	if !ok {
		return false, false
	}
	n.rects[i] = rectCalc(children[i], tr.dims)
	idx := int(n.count)
	n.rects[idx] = rectCalc(right, tr.dims)
	children[idx] = right
	n.count++
	return tr.nodeInsert(cn, ir, item, depth)
}
