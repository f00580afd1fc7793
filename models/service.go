package models

// Service type discriminants. Products are simple retail items (no schedule);
// services are therapy offerings booked per visit.
const (
	ServiceTypeService = "service"
	ServiceTypeProduct = "product"
)

// Service is a purchasable catalog entry. Immutable once fetched; the
// catalog collection is the source of truth.
type Service struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Price    int64  `bson:"price" json:"price"`       // unit price in whole Rupiah
	Duration int    `bson:"duration" json:"duration"` // minutes per visit
	Type     string `bson:"type" json:"type"`         // "service" or "product"
}
