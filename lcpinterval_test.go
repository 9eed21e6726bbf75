package stringology

import (
	"math/rand"
	"testing"
)

func checkIntervalTree(t *testing.T, text []byte) {
	t.Helper()
	index := mustBuild(t, text)
	sa, lcp := index.SuffixArray(), index.LCP()
	n := len(text)
	tree := index.LCPIntervals()

	if root := tree.Root(); root.Depth != 0 || root.Begin != 0 || root.End != n-1 {
		t.Fatalf("root = %+v", root)
	}
	if len(tree.Edges) != len(tree.Intervals)-1 {
		t.Fatalf("%d edges for %d intervals", len(tree.Edges), len(tree.Intervals))
	}

	leaves := 0
	for i, iv := range tree.Intervals {
		if tree.IsLeaf(i) {
			leaves++
			if iv.Depth != n-int(sa[iv.Begin]) {
				t.Errorf("leaf %+v should span its whole suffix", iv)
			}
			continue
		}
		// every adjacent pair inside the interval shares Depth characters, and the bounds are maximal
		minLCP := int(lcp[iv.Begin+1])
		for k := iv.Begin + 1; k <= iv.End; k++ {
			minLCP = min(minLCP, int(lcp[k]))
		}
		if minLCP != iv.Depth {
			t.Errorf("interval %+v has minimum lcp %d", iv, minLCP)
		}
		if iv.Begin > 0 && int(lcp[iv.Begin]) >= iv.Depth {
			t.Errorf("interval %+v can be extended to the left", iv)
		}
		if iv.End < n-1 && int(lcp[iv.End+1]) >= iv.Depth {
			t.Errorf("interval %+v can be extended to the right", iv)
		}
	}
	if leaves != n {
		t.Errorf("got %d leaves, want %d", leaves, n)
	}

	linked := map[[2]int]bool{}
	for _, e := range tree.Edges {
		linked[[2]int{e.Parent, e.Child}] = true
		parent, child := tree.Interval(e.Parent), tree.Interval(e.Child)
		if child.Depth <= parent.Depth || child.Begin < parent.Begin || child.End > parent.End {
			t.Errorf("edge %+v: child %+v is not nested in parent %+v", e, child, parent)
		}
		if want := text[int(sa[child.Begin])+parent.Depth]; e.Label != want {
			t.Errorf("edge %+v: label %q, want %q", e, e.Label, want)
		}
	}

	// the children of an internal node partition it and have distinct labels
	listed := 0
	for i := range tree.Intervals {
		listed += len(tree.Children(i))
		for _, c := range tree.Children(i) {
			if !linked[[2]int{i, c}] {
				t.Errorf("child %d of %d has no edge", c, i)
			}
		}
		if tree.IsLeaf(i) {
			if len(tree.Children(i)) != 0 {
				t.Errorf("leaf %+v has children", tree.Interval(i))
			}
			continue
		}
		next := tree.Interval(i).Begin
		labels := map[byte]bool{}
		for _, c := range tree.Children(i) {
			child := tree.Interval(c)
			if child.Begin != next {
				t.Errorf("children of %+v do not partition it", tree.Interval(i))
			}
			next = child.End + 1
			label := text[int(sa[child.Begin])+tree.Interval(i).Depth]
			if labels[label] {
				t.Errorf("two children of %+v start with %q", tree.Interval(i), label)
			}
			labels[label] = true
		}
		if next != tree.Interval(i).End+1 {
			t.Errorf("children of %+v do not cover it", tree.Interval(i))
		}
	}
	if listed != len(tree.Edges) {
		t.Errorf("%d children listed for %d edges", listed, len(tree.Edges))
	}
}

func TestLCPIntervals(t *testing.T) {
	for _, s := range sampleTexts {
		t.Run(s, func(t *testing.T) {
			checkIntervalTree(t, terminate(s))
		})
	}
}

func TestLCPIntervalsBanana(t *testing.T) {
	index := mustBuild(t, terminate("banana"))
	tree := index.LCPIntervals()

	internal := map[LCPInterval]bool{}
	for i, iv := range tree.Intervals {
		if !tree.IsLeaf(i) {
			internal[iv] = true
		}
	}
	// ranks: $ a$ ana$ anana$ banana$ na$ nana$
	want := []LCPInterval{
		{Depth: 0, Begin: 0, End: 6},
		{Depth: 1, Begin: 1, End: 3},
		{Depth: 3, Begin: 2, End: 3},
		{Depth: 2, Begin: 5, End: 6},
	}
	if len(internal) != len(want) {
		t.Fatalf("got %d internal intervals, want %d", len(internal), len(want))
	}
	for _, iv := range want {
		if !internal[iv] {
			t.Errorf("missing interval %+v", iv)
		}
	}
}

func TestLCPIntervalsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 100; iter++ {
		checkIntervalTree(t, append(randomText(rng, 1+rng.Intn(40), "ab"), Sentinel))
	}
}
