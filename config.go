package regioncount

import (
	"fmt"
	"os"

	"github.com/luggagelab/go-regioncount/counter"
	"github.com/luggagelab/go-regioncount/region"
	"gopkg.in/yaml.v3"
)

// RegionConfig defines one region entry in the configuration file
type RegionConfig struct {
	// ID is the unique region identifier
	ID string `yaml:"id"`
	// Name is the human readable label rendered on the overlay.
	// Defaults to the ID when empty
	Name string `yaml:"name"`
	// Vertices are the polygon corner points as [x, y] pairs in image
	// coordinates
	Vertices [][2]float32 `yaml:"vertices"`
	// Margin optionally grows the polygon outwards by the given number
	// of pixels to add tolerance for tracker jitter at the boundary
	Margin float64 `yaml:"margin"`
}

// Config defines the region counting configuration loaded from a YAML
// file
type Config struct {
	// Policy selects the re-entry counting policy, "count_once"
	// (default) or "count_reentries"
	Policy string `yaml:"policy"`
	// Membership selects the box point tested for region membership,
	// "foot_point" (default) or "probe_points"
	Membership string `yaml:"membership"`
	// Labels optionally restricts counting to the given class label
	// names, eg: suitcase.  Empty means all classes are counted
	Labels []string `yaml:"labels"`
	// Regions are the operator defined polygon regions
	Regions []RegionConfig `yaml:"regions"`
}

// LoadConfig reads and validates the YAML configuration file.
// Malformed polygons are fatal here, before any frame processing
// starts
func LoadConfig(file string) (*Config, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error opening config file: %w", err)
	}

	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if len(cfg.Regions) == 0 {
		return nil, fmt.Errorf("config defines no regions")
	}

	// validate policy and membership values and all region polygons up
	// front
	if _, err := cfg.CountPolicy(); err != nil {
		return nil, err
	}

	if _, err := cfg.MembershipMode(); err != nil {
		return nil, err
	}

	if _, err := cfg.BuildRegions(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// CountPolicy returns the counter policy selected by the configuration
func (c *Config) CountPolicy() (counter.Policy, error) {

	switch c.Policy {
	case "", "count_once":
		return counter.CountOnce, nil
	case "count_reentries":
		return counter.CountReentries, nil
	}

	return 0, fmt.Errorf("unknown policy %q", c.Policy)
}

// MembershipMode returns the membership mode selected by the
// configuration
func (c *Config) MembershipMode() (counter.Membership, error) {

	switch c.Membership {
	case "", "foot_point":
		return counter.FootPoint, nil
	case "probe_points":
		return counter.ProbePoints, nil
	}

	return 0, fmt.Errorf("unknown membership mode %q", c.Membership)
}

// BuildRegions constructs the configured regions, applying any margin
// inflation.  Region IDs must be unique
func (c *Config) BuildRegions() ([]region.Region, error) {

	seen := make(map[string]bool, len(c.Regions))
	regions := make([]region.Region, 0, len(c.Regions))

	for _, rc := range c.Regions {

		if rc.ID == "" {
			return nil, fmt.Errorf("region with empty id")
		}

		if seen[rc.ID] {
			return nil, fmt.Errorf("duplicate region id %s", rc.ID)
		}

		seen[rc.ID] = true

		name := rc.Name

		if name == "" {
			name = rc.ID
		}

		vertices := make([]region.Point, 0, len(rc.Vertices))

		for _, v := range rc.Vertices {
			vertices = append(vertices, region.Point{X: v[0], Y: v[1]})
		}

		reg, err := region.NewRegion(rc.ID, name, vertices)

		if err != nil {
			return nil, err
		}

		if rc.Margin > 0 {
			poly, err := reg.Poly.Inflate(rc.Margin)

			if err != nil {
				return nil, fmt.Errorf("region %s: %w", rc.ID, err)
			}

			reg.Poly = poly
		}

		regions = append(regions, reg)
	}

	return regions, nil
}
