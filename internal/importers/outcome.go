package importers

// Outcome is the result of parsing one row: either a record or a rejection reason.
type Outcome[T any] struct {
	record   T
	reason   string
	accepted bool
}

// RowParser converts a normalized row into a typed record or a rejection.
type RowParser[T any] func(Row) Outcome[T]

func Accept[T any](record T) Outcome[T] {
	return Outcome[T]{record: record, accepted: true}
}

func Reject[T any](reason string) Outcome[T] {
	return Outcome[T]{reason: reason}
}

// Record returns the parsed record and whether the row was accepted.
func (o Outcome[T]) Record() (T, bool) {
	return o.record, o.accepted
}

// Reason explains a rejection; it is empty for accepted rows.
func (o Outcome[T]) Reason() string {
	return o.reason
}
