package stringology

// LCPInterval is a node of the implicit suffix tree: the suffixes with ranks Begin..End share
// a prefix of length Depth, and the range is maximal for that depth.
// Leaves have Begin == End and the depth of their whole suffix, sentinel included.
type LCPInterval struct {
	Depth int
	Begin int
	End   int
}

// SuffixEdge connects two intervals of an IntervalTree by their arena indices.
// Label is the first character below the parent, i.e. T[SA[child.Begin]+parent.Depth].
type SuffixEdge struct {
	Parent int
	Child  int
	Label  byte
}

// IntervalTree stores the LCP intervals of a text in an arena; index 0 is the root.
type IntervalTree struct {
	Intervals []LCPInterval
	Edges     []SuffixEdge

	// children[i] lists the arena indices below i, linked in increasing Begin
	children [][]int
}

func (t *IntervalTree) Root() LCPInterval {
	return t.Intervals[0]
}

// Interval returns the interval stored at arena index i.
func (t *IntervalTree) Interval(i int) LCPInterval {
	return t.Intervals[i]
}

func (t *IntervalTree) IsLeaf(i int) bool {
	return t.Intervals[i].Begin == t.Intervals[i].End
}

// Children returns the arena indices of the children of node i in lexicographic order.
// The returned slice is owned by the tree.
func (t *IntervalTree) Children(i int) []int {
	return t.children[i]
}

// BuildIntervalTree enumerates all LCP intervals, leaves included, with one bottom-up scan over
// the LCP array. The open intervals form a path from the root kept on an index stack; closing an
// interval links it to whichever interval ends up below it on the path. Siblings close from left
// to right, so child lists come out sorted.
func BuildIntervalTree(text []byte, sa, lcp []int32) *IntervalTree {
	n := len(sa)
	t := &IntervalTree{
		Intervals: make([]LCPInterval, 0, 2*n),
		Edges:     make([]SuffixEdge, 0, 2*n),
		children:  make([][]int, 0, 2*n),
	}
	if n == 0 {
		t.Intervals = append(t.Intervals, LCPInterval{Depth: 0, Begin: 0, End: -1})
		t.children = append(t.children, nil)
		return t
	}

	link := func(parent, child int) {
		p := t.Intervals[parent]
		c := t.Intervals[child]
		t.Edges = append(t.Edges, SuffixEdge{
			Parent: parent,
			Child:  child,
			Label:  text[int(sa[c.Begin])+p.Depth],
		})
		t.children[parent] = append(t.children[parent], child)
	}
	open := func(depth, begin int) int {
		t.Intervals = append(t.Intervals, LCPInterval{Depth: depth, Begin: begin, End: -1})
		t.children = append(t.children, nil)
		return len(t.Intervals) - 1
	}

	path := []int{open(0, 0)}
	for i := 0; i < n; i++ {
		h := 0
		if i > 0 {
			h = int(lcp[i])
		}

		last := -1
		for t.Intervals[path[len(path)-1]].Depth > h {
			node := path[len(path)-1]
			path = path[:len(path)-1]
			t.Intervals[node].End = i - 1
			if last != -1 {
				link(node, last)
			}
			last = node
		}
		if last != -1 {
			if top := path[len(path)-1]; t.Intervals[top].Depth < h {
				path = append(path, open(h, t.Intervals[last].Begin))
			}
			link(path[len(path)-1], last)
		}

		path = append(path, open(n-int(sa[i]), i))
	}

	last := -1
	for len(path) > 0 {
		node := path[len(path)-1]
		path = path[:len(path)-1]
		t.Intervals[node].End = n - 1
		if last != -1 {
			link(node, last)
		}
		last = node
	}
	return t
}

// LCPIntervals builds the interval tree of the indexed text.
func (x *Index) LCPIntervals() *IntervalTree {
	return BuildIntervalTree(x.text, x.sa, x.lcp)
}
