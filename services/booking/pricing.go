package booking

import (
	"fmt"
	"time"

	"terapiku/models"
)

const (
	// PackageVisits is the number of visits in a bundled package.
	PackageVisits = 4
	// PackageDiscount is the flat Rupiah discount applied to a package.
	PackageDiscount = 200000
)

// PriceAndLabel computes the charged price and display name for a cart line.
// Prices are whole-Rupiah integers; malformed inputs propagate as given.
func PriceAndLabel(svc models.Service, isPackage bool, slots []models.AppointmentSlot) (int64, string) {
	if isPackage {
		price := svc.Price*PackageVisits - PackageDiscount
		return price, fmt.Sprintf("%s (Package - %d visits)", svc.Name, PackageVisits)
	}
	if len(slots) == 1 {
		label := fmt.Sprintf("%s (Single visit) - %s at %s", svc.Name, formatSlotDate(slots[0].Date), slots[0].Time)
		return svc.Price, label
	}
	return svc.Price, svc.Name
}

// CartLineKey derives the unique identity of a cart line. Lines carrying a
// schedule are keyed so that distinct schedules never merge; packages with
// appointments additionally carry the creation timestamp so two packages of
// the same service stay distinct.
func CartLineKey(svc models.Service, isPackage bool, slots []models.AppointmentSlot, createdAt time.Time) string {
	switch {
	case isPackage && len(slots) > 0:
		return fmt.Sprintf("%s-package-%d", svc.ID, createdAt.UnixMilli())
	case len(slots) > 0:
		return fmt.Sprintf("%s-%s-%s", svc.ID, slots[0].Date, slots[0].Time)
	case isPackage:
		return svc.ID + "-package"
	default:
		return svc.ID
	}
}

func formatSlotDate(date string) string {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02 Jan 2006")
}
