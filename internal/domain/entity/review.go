package entity

type Review struct {
	ID             int    `json:"id"`
	ReviewerID     int    `json:"reviewerId"`
	ReviewedUserID int    `json:"reviewedUserId"`
	Grade          int    `json:"grade"`
	Comment        string `json:"comment"`
	Date           string `json:"date"`
	Deleted        bool   `json:"deleted"`
}
