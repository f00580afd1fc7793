package booking

import (
	"time"

	"terapiku/models"
)

// AddItem prices the service and appends or merges a cart line. Lines that
// carry appointments are always appended as new lines, since each carries a
// distinct schedule; simple items merge by key, incrementing quantity.
// It returns the line that was added or updated.
func AddItem(cart *models.Cart, svc models.Service, isPackage bool, slots []models.AppointmentSlot, now time.Time) models.CartItem {
	price, label := PriceAndLabel(svc, isPackage, slots)
	key := CartLineKey(svc, isPackage, slots, now)

	if len(slots) == 0 {
		for i := range cart.Items {
			if cart.Items[i].Key == key {
				cart.Items[i].Quantity++
				return cart.Items[i]
			}
		}
	}

	item := models.CartItem{
		Key:          key,
		ServiceID:    svc.ID,
		ServiceName:  svc.Name,
		Name:         label,
		Price:        price,
		Quantity:     1,
		Type:         svc.Type,
		IsPackage:    isPackage,
		Duration:     svc.Duration,
		Appointments: slots,
	}
	cart.Items = append(cart.Items, item)
	return item
}

// UpdateQuantity replaces a line's quantity; a quantity of zero or less
// removes the line. Unknown keys are a no-op.
func UpdateQuantity(cart *models.Cart, key string, quantity int) {
	if quantity <= 0 {
		RemoveItem(cart, key)
		return
	}
	for i := range cart.Items {
		if cart.Items[i].Key == key {
			cart.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem filters a line out of the cart. Unknown keys are a no-op.
func RemoveItem(cart *models.Cart, key string) {
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Key != key {
			items = append(items, item)
		}
	}
	cart.Items = items
}

// ClearCart empties the cart unconditionally.
func ClearCart(cart *models.Cart) {
	cart.Items = nil
}

// CartTotal sums price x quantity over all lines in whole Rupiah.
func CartTotal(cart models.Cart) int64 {
	var total int64
	for _, item := range cart.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
