package bst

import (
	"math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	gbtree "github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/cartland/algorithms/sortable"
)

// Comparison benchmarks against established ordered containers. The
// numbers are not apples-to-apples (the baselines self-balance on every
// insert, this tree only on demand); they exist to keep the cost of the
// naive structure visible.

const benchN = 1 << 13

var sideEff bool

func benchValues(n int) []int {
	rng := rand.New(rand.NewPCG(17, 29))
	vals := make([]int, n)

	for i := range vals {
		vals[i] = rng.IntN(n * 8)
	}

	return vals
}

func BenchmarkInsert_Tree(b *testing.B) {
	vals := benchValues(benchN)
	b.ResetTimer()

	for range b.N {
		tree := New[sortable.Int]()
		for _, v := range vals {
			tree.Insert(sortable.Int(v))
		}
	}
}

func BenchmarkInsert_GodsRedBlackTree(b *testing.B) {
	vals := benchValues(benchN)
	b.ResetTimer()

	for range b.N {
		tree := redblacktree.NewWithIntComparator()
		for _, v := range vals {
			tree.Put(v, v)
		}
	}
}

func BenchmarkInsert_GodsAVLTree(b *testing.B) {
	vals := benchValues(benchN)
	b.ResetTimer()

	for range b.N {
		tree := avltree.NewWithIntComparator()
		for _, v := range vals {
			tree.Put(v, v)
		}
	}
}

func BenchmarkInsert_LLRB(b *testing.B) {
	vals := benchValues(benchN)
	b.ResetTimer()

	for range b.N {
		tree := llrb.New()
		for _, v := range vals {
			tree.ReplaceOrInsert(llrb.Int(v))
		}
	}
}

func BenchmarkInsert_BTree(b *testing.B) {
	vals := benchValues(benchN)
	b.ResetTimer()

	for range b.N {
		tree := gbtree.NewOrderedG[int](32)
		for _, v := range vals {
			tree.ReplaceOrInsert(v)
		}
	}
}

func BenchmarkFind_Tree(b *testing.B) {
	vals := benchValues(benchN)
	tree := New[sortable.Int]()

	for _, v := range vals {
		tree.Insert(sortable.Int(v))
	}

	tree.Balance()
	b.ResetTimer()

	for range b.N {
		for _, v := range vals {
			_, sideEff = tree.Find(sortable.Int(v))
		}
	}
}

func BenchmarkFind_GodsRedBlackTree(b *testing.B) {
	vals := benchValues(benchN)
	tree := redblacktree.NewWithIntComparator()

	for _, v := range vals {
		tree.Put(v, v)
	}

	b.ResetTimer()

	for range b.N {
		for _, v := range vals {
			_, sideEff = tree.Get(v)
		}
	}
}

func BenchmarkFind_LLRB(b *testing.B) {
	vals := benchValues(benchN)
	tree := llrb.New()

	for _, v := range vals {
		tree.ReplaceOrInsert(llrb.Int(v))
	}

	b.ResetTimer()

	for range b.N {
		for _, v := range vals {
			sideEff = tree.Has(llrb.Int(v))
		}
	}
}

func BenchmarkFind_BTree(b *testing.B) {
	vals := benchValues(benchN)
	tree := gbtree.NewOrderedG[int](32)

	for _, v := range vals {
		tree.ReplaceOrInsert(v)
	}

	b.ResetTimer()

	for range b.N {
		for _, v := range vals {
			sideEff = tree.Has(v)
		}
	}
}
