package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInventoryAddMergesByKind(t *testing.T) {
	var inv Inventory
	inv.Add("wood", 10)
	inv.Add("stone", 5)
	inv.Add("wood", 10)

	require.Equal(t, []Line{{Kind: "wood", Amount: 20}, {Kind: "stone", Amount: 5}}, inv.Lines())
	assert.Equal(t, 25, inv.Weight())
	assert.Equal(t, 2, inv.Len())
}

func TestInventoryIgnoresNonPositive(t *testing.T) {
	var inv Inventory
	inv.Add("wood", 0)
	inv.Add("wood", -3)

	assert.True(t, inv.IsEmpty())
	assert.Nil(t, inv.Lines())
	assert.Zero(t, inv.Weight())
}

func TestInventoryLinesIsCopy(t *testing.T) {
	var inv Inventory
	inv.Add("wood", 10)

	lines := inv.Lines()
	lines[0].Amount = 999

	assert.Equal(t, 10, inv.Amount("wood"))
}

func TestInventoryClear(t *testing.T) {
	var inv Inventory
	inv.Add("wood", 10)
	inv.Clear()

	assert.True(t, inv.IsEmpty())
	assert.Zero(t, inv.Weight())
	assert.Zero(t, inv.Amount("wood"))
}

var resourceKinds = []string{"wood", "stone", "gold", "food"}

func TestInventoryWeightProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var inv Inventory
		want := map[string]int{}
		total := 0

		ops := rapid.IntRange(0, 40).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			kind := rapid.SampledFrom(resourceKinds).Draw(t, "kind")
			amount := rapid.IntRange(-5, 50).Draw(t, "amount")
			inv.Add(kind, amount)
			if amount > 0 {
				want[kind] += amount
				total += amount
			}

			if inv.Weight() != total {
				t.Fatalf("weight %d, want %d", inv.Weight(), total)
			}
		}

		seen := map[string]bool{}
		for _, l := range inv.Lines() {
			if seen[l.Kind] {
				t.Fatalf("duplicate line for %q", l.Kind)
			}
			seen[l.Kind] = true
			if l.Amount != want[l.Kind] {
				t.Fatalf("%s amount %d, want %d", l.Kind, l.Amount, want[l.Kind])
			}
		}
		if len(seen) != len(want) {
			t.Fatalf("got %d kinds, want %d", len(seen), len(want))
		}
	})
}

func TestInventoryMergeProperty(t *testing.T) {
	lineGen := rapid.Custom(func(t *rapid.T) Line {
		return Line{
			Kind:   rapid.SampledFrom(resourceKinds).Draw(t, "kind"),
			Amount: rapid.IntRange(1, 100).Draw(t, "amount"),
		}
	})

	rapid.Check(t, func(t *rapid.T) {
		var dst, src Inventory
		for _, l := range rapid.SliceOfN(lineGen, 0, 8).Draw(t, "dst") {
			dst.Add(l.Kind, l.Amount)
		}
		for _, l := range rapid.SliceOfN(lineGen, 0, 8).Draw(t, "src") {
			src.Add(l.Kind, l.Amount)
		}

		before := dst.Lines()
		dst.Merge(src.Lines())

		for _, k := range resourceKinds {
			var b Inventory
			b.Merge(before)
			if got, want := dst.Amount(k), b.Amount(k)+src.Amount(k); got != want {
				t.Fatalf("%s: got %d, want %d", k, got, want)
			}
		}

		// Existing lines keep their position
		after := dst.Lines()
		for i, l := range before {
			if after[i].Kind != l.Kind {
				t.Fatalf("line %d moved: %q became %q", i, l.Kind, after[i].Kind)
			}
		}
		if dst.Weight() != sumLines(before)+src.Weight() {
			t.Fatalf("weight %d, want %d", dst.Weight(), sumLines(before)+src.Weight())
		}
	})
}

func sumLines(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Amount
	}
	return total
}
