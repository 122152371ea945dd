package domain

// Vendor supplies products to the shop.
// ID is zero until the record has been saved for the first time.
type Vendor struct {
	ID   ID     `db:"id"`
	Name string `db:"name"`
}
