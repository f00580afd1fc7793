package models

// CartItem is one line of a checkout cart: a quantity of a priced,
// possibly-scheduled offering. Key uniquely identifies the line (see
// booking.CartLineKey for the derivation rules).
type CartItem struct {
	Key          string            `json:"key"`
	ServiceID    string            `json:"serviceId"`
	ServiceName  string            `json:"serviceName"` // raw catalog name, kept for committed sessions
	Name         string            `json:"name"`        // rewritten display label
	Price        int64             `json:"price"` // per-line unit price in whole Rupiah
	Quantity     int               `json:"quantity"`
	Type         string            `json:"type"`
	IsPackage    bool              `json:"isPackage,omitempty"`
	Duration     int               `json:"duration,omitempty"`
	Appointments []AppointmentSlot `json:"appointments,omitempty"`
}

// Cart aggregates the line items of one checkout session. It is owned by a
// single interactive session and destroyed on clear or successful commit.
type Cart struct {
	Items []CartItem `json:"items"`
}
