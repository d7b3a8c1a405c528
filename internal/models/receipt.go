package models

// Receipt is a confirmed bill together with its computed split.
// It is produced when the user confirms the bill field and is kept in the
// session history until the program exits.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	// Assigned by the store when empty.
	ID string

	// BillText is the trimmed text the user confirmed.
	BillText string

	// Bill is the parsed bill amount before tip.
	Bill float64

	// TipPercentage is the whole tip percentage derived from the slider.
	TipPercentage int

	// SplitBy is the number of people sharing the bill.
	SplitBy int

	// TotalTip is the tip on the whole bill, unrounded.
	TotalTip float64

	// TotalPerPerson is what each person pays, tip included, unrounded.
	TotalPerPerson float64

	// CreatedAt is the Unix timestamp when the receipt was recorded.
	CreatedAt int64
}

// Total is the bill plus tip, before splitting.
func (r Receipt) Total() float64 {
	return r.Bill + r.TotalTip
}
