package campus

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/UnknownOlympus/locus/internal/geo"
	"github.com/UnknownOlympus/locus/internal/matcher"
	"gopkg.in/yaml.v3"
)

// Reference table errors.
var (
	ErrEmptyTable          = errors.New("reference table is empty")
	ErrIncompleteReference = errors.New("reference is missing a required field")
)

// file is the YAML layout of an alternative reference table.
type file struct {
	References []fileEntry `yaml:"references"`
}

// fileEntry keeps coordinates as pointers so a missing key is not read as 0.
type fileEntry struct {
	Name    string   `yaml:"name"`
	Campus  string   `yaml:"campus"`
	Lat     *float64 `yaml:"lat"`
	Lon     *float64 `yaml:"lon"`
	Address string   `yaml:"address"`
}

var defaultSet = sync.OnceValues(func() (*matcher.ReferenceSet, error) {
	return build(builtin)
})

// Default returns the built-in reference set. It is built once and shared read-only.
func Default() (*matcher.ReferenceSet, error) {
	return defaultSet()
}

// Cluster returns the built-in references of one campus, in matching order.
func Cluster(name string) (*matcher.ReferenceSet, error) {
	var rows []entry
	for _, row := range builtin {
		if row.Campus == name {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: campus %q", ErrEmptyTable, name)
	}
	return build(rows)
}

// LoadFile reads a reference table from a YAML file.
func LoadFile(path string) (*matcher.ReferenceSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference table: %w", err)
	}

	var table file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&table); err != nil {
		return nil, fmt.Errorf("failed to decode reference table: %w", err)
	}
	if len(table.References) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, path)
	}

	rows := make([]entry, 0, len(table.References))
	for idx, ref := range table.References {
		if ref.Lat == nil || ref.Lon == nil {
			return nil, fmt.Errorf("%w: entry %d (%q) needs lat and lon", ErrIncompleteReference, idx, ref.Name)
		}
		rows = append(rows, entry{Name: ref.Name, Campus: ref.Campus, Lat: *ref.Lat, Lon: *ref.Lon, Address: ref.Address})
	}

	return build(rows)
}

// MaxSpread returns the largest pairwise distance between references in meters.
func MaxSpread(set *matcher.ReferenceSet) float64 {
	refs := set.All()
	var spread float64
	for i := range refs {
		for j := i + 1; j < len(refs); j++ {
			spread = max(spread, refs[i].Point.DistanceMeters(refs[j].Point))
		}
	}
	return spread
}

func build(rows []entry) (*matcher.ReferenceSet, error) {
	refs := make([]matcher.Reference, 0, len(rows))
	for _, row := range rows {
		if row.Address == "" {
			return nil, fmt.Errorf("%w: reference %q has no address", ErrIncompleteReference, row.Name)
		}
		point, err := geo.NewPoint(row.Lat, row.Lon, row.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid reference %q: %w", row.Name, err)
		}
		refs = append(refs, matcher.Reference{Name: row.Name, Point: point})
	}

	return matcher.NewReferenceSet(refs...)
}
