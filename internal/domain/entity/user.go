package entity

const (
	RoleBuyer         = "Buyer"
	RoleSeller        = "Seller"
	RoleAdministrator = "Administrator"
)

type User struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Surname     string  `json:"surname"`
	Username    string  `json:"username"`
	Mail        string  `json:"mail"`
	Number      string  `json:"number"`
	Password    string  `json:"password,omitempty"`
	Birthday    string  `json:"birthday"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Role        string  `json:"role"`
	Blocked     bool    `json:"blocked"`
	Products    []int   `json:"products"`
	Reviews     []int   `json:"reviews"`
	AvgRating   float64 `json:"avgRating"`
}

// Sanitized returns a copy safe to hand back to API clients: the stored
// password hash is stripped.
func (u *User) Sanitized() *User {
	out := *u
	out.Password = ""
	out.Products = append([]int(nil), u.Products...)
	out.Reviews = append([]int(nil), u.Reviews...)
	return &out
}

// RemoveProduct drops a product id from the user's owned/purchased list.
func (u *User) RemoveProduct(productID int) {
	kept := u.Products[:0]
	for _, id := range u.Products {
		if id != productID {
			kept = append(kept, id)
		}
	}
	u.Products = kept
}

// RemoveReview drops a review id from the user's received-review list.
func (u *User) RemoveReview(reviewID int) {
	kept := u.Reviews[:0]
	for _, id := range u.Reviews {
		if id != reviewID {
			kept = append(kept, id)
		}
	}
	u.Reviews = kept
}
