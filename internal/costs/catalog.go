package costs

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed cities.toml
var citiesTOML string

// CityProfile is one row of the static city table. Cities without AvgCost
// carry cost data only and are left out of profile search.
type CityProfile struct {
	Name         string   `toml:"name" json:"name"`
	State        string   `toml:"state" json:"state"`
	Multiplier   float64  `toml:"multiplier" json:"-"`
	CostIndex    string   `toml:"cost_index" json:"costIndex"`
	Popularity   string   `toml:"popularity" json:"popularity"`
	BestTime     string   `toml:"best_time" json:"bestTime"`
	AvgCost      float64  `toml:"avg_cost" json:"avgCost"`
	WeatherScore float64  `toml:"weather_score" json:"weatherScore"`
	CultureScore float64  `toml:"culture_score" json:"cultureScore"`
	Highlights   []string `toml:"highlights" json:"highlights"`
	Description  string   `toml:"description" json:"description"`
	ImageURL     string   `toml:"image_url" json:"imageUrl"`
}

// Profiled reports whether the city has travel profile data.
func (p CityProfile) Profiled() bool {
	return p.AvgCost > 0
}

// Fallback holds the hard-coded values used when external signals are unavailable.
type Fallback struct {
	GDPPerCapitaUSD float64            `toml:"gdp_per_capita_usd"`
	USDToINR        float64            `toml:"usd_to_inr"`
	DailyCost       float64            `toml:"daily_cost"`
	Rates           map[string]float64 `toml:"rates"`
	Components      CostComponents     `toml:"components"`
}

// Catalog is the static city table for the home country.
type Catalog struct {
	Country      string            `toml:"country"`
	CountryCode  string            `toml:"country_code"`
	Currency     string            `toml:"currency"`
	Fallback     Fallback          `toml:"fallback"`
	CountryCodes map[string]string `toml:"country_codes"`
	Cities       []CityProfile     `toml:"cities"`
}

var (
	defaultCatalog    *Catalog
	defaultCatalogErr error
	catalogOnce       sync.Once
)

// DefaultCatalog returns the embedded city table, parsed once.
func DefaultCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = ParseCatalog(citiesTOML)
	})
	return defaultCatalog, defaultCatalogErr
}

// ParseCatalog decodes a TOML city table.
func ParseCatalog(doc string) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(doc, &c); err != nil {
		return nil, fmt.Errorf("decoding city catalog: %w", err)
	}
	if len(c.Cities) == 0 {
		return nil, fmt.Errorf("city catalog has no cities")
	}
	if c.Fallback.DailyCost <= 0 || c.Fallback.GDPPerCapitaUSD <= 0 || c.Fallback.USDToINR <= 0 {
		return nil, fmt.Errorf("city catalog fallback values must be positive")
	}
	return &c, nil
}

// Names lists city names in table order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		out = append(out, city.Name)
	}
	return out
}

// City finds a city by name, case-insensitively.
func (c *Catalog) City(name string) (CityProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, city := range c.Cities {
		if strings.ToLower(city.Name) == key {
			return city, true
		}
	}
	return CityProfile{}, false
}

// Multiplier is the city's cost factor relative to the national average, 1.0 when unknown.
func (c *Catalog) Multiplier(city string) float64 {
	if p, ok := c.City(city); ok && p.Multiplier > 0 {
		return p.Multiplier
	}
	return 1.0
}

// ResolveCountry maps a country name or ISO3 code to its ISO3 code.
func (c *Catalog) ResolveCountry(country string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(country))
	if key == "" {
		return "", false
	}
	if code, ok := c.CountryCodes[key]; ok {
		return code, true
	}
	for _, code := range c.CountryCodes {
		if strings.ToLower(code) == key {
			return code, true
		}
	}
	return "", false
}

// Profiles returns the cities that carry travel profile data, in table order.
func (c *Catalog) Profiles() []CityProfile {
	out := []CityProfile{}
	for _, city := range c.Cities {
		if city.Profiled() {
			out = append(out, city)
		}
	}
	return out
}

// StaticBaseDaily is the national per-day baseline computed from the fallback indicators.
func (c *Catalog) StaticBaseDaily() float64 {
	return baseDailyCost(c.Fallback.GDPPerCapitaUSD, c.Fallback.USDToINR)
}

// baseDailyCost assumes a tourist spends twice the daily GDP per capita.
func baseDailyCost(gdpPerCapitaUSD, usdToINR float64) float64 {
	return gdpPerCapitaUSD * usdToINR / 365 * 2
}
