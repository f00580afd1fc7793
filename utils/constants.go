// File: utils/constants.go
package utils

import "time"

// CheckoutCachePrefix is the prefix used for Redis checkout-session keys.
const CheckoutCachePrefix = "checkout:"

// DefaultCheckoutTTL bounds how long an unconfirmed checkout session lives.
const DefaultCheckoutTTL = 30 * time.Minute
