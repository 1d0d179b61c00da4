package model

// Book represents một row trong books table
type Book struct {
	ID     int64   `json:"id" db:"id"`
	Title  string  `json:"title" db:"title"`
	Author string  `json:"author" db:"author"`
	Price  float64 `json:"price" db:"price"`
}
