package utils

import "net/url"

// MapSearchURL builds a geocoded map search link for a free-text address.
// Opening it is a fire-and-forget client affordance, not part of the
// planning contract.
func MapSearchURL(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}
