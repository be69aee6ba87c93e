package models

// LocationRecord is a location row whose address is normalized against the reference table.
// Coordinates are kept as received; parsing happens in the matcher.
type LocationRecord struct {
	ID        int    // ID is the unique identifier for the record.
	Latitude  string // Latitude as a decimal string.
	Longitude string // Longitude as a decimal string.
	Address   string // Address is the raw, possibly unreliable, address.
}

// Coordinates returns the raw latitude and longitude strings.
func (r *LocationRecord) Coordinates() (string, string) { return r.Latitude, r.Longitude }

// CurrentAddress returns the current address.
func (r *LocationRecord) CurrentAddress() string { return r.Address }

// SetAddress overwrites the record address.
func (r *LocationRecord) SetAddress(addr string) { r.Address = addr }
