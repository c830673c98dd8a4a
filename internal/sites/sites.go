package sites

import "sync"

// Segment values a site can carry.
const (
	SegmentWorkplace  = "workplace"
	SegmentSchool     = "school"
	SegmentHealthcare = "healthcare"
	SegmentSenior     = "senior"
	SegmentLogistics  = "logistics"
)

// Site is one static reference entry in the directory.
type Site struct {
	// SiteID is the unique string key, e.g. "helsinki-hq".
	SiteID string `yaml:"site_id" json:"site_id"`

	// Name is the human-readable site name.
	Name string `yaml:"name" json:"name"`

	// Region is the administrative region the site sits in.
	Region string `yaml:"region" json:"region"`

	// Segment is one of: workplace | school | healthcare | senior | logistics.
	Segment string `yaml:"segment" json:"segment"`
}

// Defaults returns the built-in demo site list, used when the config
// file does not define its own `sites:` section.
func Defaults() []Site {
	return []Site{
		{SiteID: "helsinki-hq", Name: "Helsinki Headquarters", Region: "Uusimaa", Segment: SegmentWorkplace},
		{SiteID: "espoo-campus", Name: "Espoo Campus Restaurant", Region: "Uusimaa", Segment: SegmentSchool},
		{SiteID: "vantaa-logistics", Name: "Vantaa Logistics Canteen", Region: "Uusimaa", Segment: SegmentWorkplace},
		{SiteID: "tampere-tech", Name: "Tampere Tech Park Kitchen", Region: "Pirkanmaa", Segment: SegmentWorkplace},
		{SiteID: "turku-hospital", Name: "Turku Hospital Cafeteria", Region: "Varsinais-Suomi", Segment: SegmentHealthcare},
	}
}

// Directory is a thread-safe, read-mostly site table. The list is set
// once at startup and only ever swapped wholesale on config reload —
// there is no per-entry mutation API.
type Directory struct {
	mu    sync.RWMutex
	order []Site
	byID  map[string]Site
}

// New creates a Directory holding the given sites in the given order.
func New(list []Site) *Directory {
	d := &Directory{}
	d.Replace(list)
	return d
}

// List returns all sites in their configured order. The returned slice
// is a copy — callers may not observe later Replace calls through it.
func (d *Directory) List() []Site {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Site, len(d.order))
	copy(out, d.order)
	return out
}

// Get returns the site for the given ID and whether it exists.
func (d *Directory) Get(siteID string) (Site, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.byID[siteID]
	return s, ok
}

// Count returns the number of sites in the directory.
func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.order)
}

// Replace swaps the whole site list atomically. Later entries win when
// two share a SiteID.
func (d *Directory) Replace(list []Site) {
	order := make([]Site, len(list))
	copy(order, list)
	byID := make(map[string]Site, len(list))
	for _, s := range list {
		byID[s.SiteID] = s
	}

	d.mu.Lock()
	d.order = order
	d.byID = byID
	d.mu.Unlock()
}
