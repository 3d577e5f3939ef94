package entity

type Category struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}
