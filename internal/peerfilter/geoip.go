package peerfilter

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
)

// CountryResolver maps a peer address to a two-letter ISO country code.
// Implementations must be safe for concurrent reads; "" means unknown.
type CountryResolver interface {
	Country(ip net.IP) string
}

// noopResolver is in place until SetResolver is called. Every lookup is
// "unknown", which turns the country-gated rules off.
type noopResolver struct{}

func (noopResolver) Country(net.IP) string { return "" }

var resolver CountryResolver = noopResolver{}

// SetResolver installs the process-wide country resolver. Call it once
// during startup, before any classification runs; the rules read it
// unsynchronized after that.
func SetResolver(r CountryResolver) {
	if r == nil {
		resolver = noopResolver{}
		return
	}
	resolver = r
}

// lookupCountry resolves the country for ip. A nil address or failed lookup
// yields "", so country-gated sub-rules evaluate false rather than guess.
func lookupCountry(ip net.IP) string {
	if ip == nil {
		return ""
	}
	return resolver.Country(ip)
}

// GeoIPResolver resolves countries from a MaxMind GeoLite2-Country
// database. Lookups are read-only and safe for concurrent use.
type GeoIPResolver struct {
	db *geoip2.Reader
}

// OpenGeoIPResolver opens the mmdb database at path.
func OpenGeoIPResolver(path string) (*GeoIPResolver, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open GeoIP database %s: %w", path, err)
	}
	return &GeoIPResolver{db: db}, nil
}

// Country returns the ISO code for ip, or "" when the lookup fails.
func (r *GeoIPResolver) Country(ip net.IP) string {
	record, err := r.db.Country(ip)
	if err != nil {
		return ""
	}
	return record.Country.IsoCode
}

// Close closes the underlying database.
func (r *GeoIPResolver) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
