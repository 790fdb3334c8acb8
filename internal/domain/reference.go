package domain

// Category classifies tickets. Reference data, read-only from this service.
type Category struct {
	ID   int64
	Name string
}

// StatusOpen is the distinguished status assigned at ticket creation.
const StatusOpen = "Open"

// TicketStatus is a lifecycle state for tickets. Reference data.
type TicketStatus struct {
	ID   int64
	Name string
}

// AdminAccount is the projection used for assignment and filter pickers.
type AdminAccount struct {
	ID       int64
	Username string
}
