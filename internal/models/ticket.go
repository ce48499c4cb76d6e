package models

type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	IsRemote      bool   `json:"is_remote"`
	IncludesHotel bool   `json:"includes_hotel"`
}

type Ticket struct {
	ID           int          `json:"id"`
	EnrollmentID int          `json:"enrollment_id"`
	Status       TicketStatus `json:"status"`
	Type         TicketType   `json:"ticket_type"`
}

type Enrollment struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`
}
