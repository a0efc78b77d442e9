package entity

// Line is one resource kind and the amount held of it
type Line struct {
	Kind   string
	Amount int
}

// Inventory is an ordered list of lines with unique kinds
// Order only matters for display
type Inventory struct {
	lines []Line
}

// Add merges amount into the line for kind, appending a new line if absent
// Non-positive amounts are ignored
func (inv *Inventory) Add(kind string, amount int) {
	if amount <= 0 {
		return
	}
	for i := range inv.lines {
		if inv.lines[i].Kind == kind {
			inv.lines[i].Amount += amount
			return
		}
	}
	inv.lines = append(inv.lines, Line{Kind: kind, Amount: amount})
}

// Merge adds every line by kind
func (inv *Inventory) Merge(lines []Line) {
	for _, l := range lines {
		inv.Add(l.Kind, l.Amount)
	}
}

// Lines returns a copy of the lines in insertion order
func (inv *Inventory) Lines() []Line {
	if len(inv.lines) == 0 {
		return nil
	}
	out := make([]Line, len(inv.lines))
	copy(out, inv.lines)
	return out
}

// Amount returns the amount held of kind
func (inv *Inventory) Amount(kind string) int {
	for _, l := range inv.lines {
		if l.Kind == kind {
			return l.Amount
		}
	}
	return 0
}

// Weight returns the sum of all line amounts
func (inv *Inventory) Weight() int {
	total := 0
	for _, l := range inv.lines {
		total += l.Amount
	}
	return total
}

func (inv *Inventory) Len() int {
	return len(inv.lines)
}

func (inv *Inventory) IsEmpty() bool {
	return len(inv.lines) == 0
}

func (inv *Inventory) Clear() {
	inv.lines = nil
}
