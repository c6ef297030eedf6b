package storage

// Table names a collection whose rows can change.
type Table string

const (
	TableGroups   Table = "groups"
	TableMembers  Table = "members"
	TableCycles   Table = "cycles"
	TablePayments Table = "payments"
)

// Change is a hint that a row changed. Consumers re-read; they never treat
// a Change as data.
type Change struct {
	Table   Table
	GroupID string
	RowID   string
}

// ChangeNotifier receives change hints after writes commit.
type ChangeNotifier interface {
	Publish(change Change)
}
