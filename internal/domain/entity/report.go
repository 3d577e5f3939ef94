package entity

const (
	ReportPending  = "Pending"
	ReportApproved = "Approved"
	ReportRejected = "Rejected"
)

type Report struct {
	ID             int    `json:"id"`
	ReporterID     int    `json:"reporterId"`
	ReportedUserID int    `json:"reportedUserId"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`
	AdminComment   string `json:"adminComment"`
	Date           string `json:"date"`
	Deleted        bool   `json:"deleted"`
}
