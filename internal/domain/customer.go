package domain

// Customer is a person who buys from the shop.
// ID is zero until the record has been saved for the first time.
type Customer struct {
	ID        ID     `db:"id"`
	Firstname string `db:"firstname"`
	Lastname  string `db:"lastname"`
}
