package services

import (
	"net/url"
	"strings"

	"tripplanner/internal/costs"
	"tripplanner/internal/domain"
)

// CityInfo is the public travel profile of a city.
type CityInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	State        string   `json:"state"`
	Country      string   `json:"country"`
	CostIndex    string   `json:"costIndex"`
	Popularity   string   `json:"popularity"`
	BestTime     string   `json:"bestTime"`
	AvgCost      float64  `json:"avgCost"`
	WeatherScore float64  `json:"weatherScore"`
	CultureScore float64  `json:"cultureScore"`
	Highlights   []string `json:"highlights"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
}

type CityService struct {
	Catalog *costs.Catalog
}

// Lookup finds a profile by exact key, then by partial name match, and
// otherwise describes the city generically.
func (s CityService) Lookup(name string) (CityInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CityInfo{}, domain.ValidationError{Field: "city", Msg: "city name is required"}
	}
	key := cityKey(name)
	lower := strings.ToLower(name)

	profiles := s.Catalog.Profiles()
	for _, p := range profiles {
		if cityKey(p.Name) == key {
			return s.info(p), nil
		}
	}
	for _, p := range profiles {
		pn := strings.ToLower(p.Name)
		if strings.Contains(pn, lower) || strings.Contains(lower, pn) {
			return s.info(p), nil
		}
	}

	return CityInfo{
		ID:           key,
		Name:         name,
		State:        "Unknown",
		Country:      s.Catalog.Country,
		CostIndex:    "medium",
		Popularity:   "medium",
		BestTime:     "Oct-Mar",
		AvgCost:      3000,
		WeatherScore: 3.5,
		CultureScore: 4.0,
		Highlights:   []string{"Local Culture", "Historical Sites", "Local Cuisine"},
		Description:  "Discover the charm and beauty of " + name + ".",
		ImageURL:     "https://source.unsplash.com/800x500/?" + url.QueryEscape(name),
	}, nil
}

// Search matches q against city name and state; cost and popularity filter
// exactly when set.
func (s CityService) Search(q, cost, popularity string) []CityInfo {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []CityInfo{}
	for _, p := range s.Catalog.Profiles() {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.State), q) {
			continue
		}
		if cost != "" && p.CostIndex != cost {
			continue
		}
		if popularity != "" && p.Popularity != popularity {
			continue
		}
		out = append(out, s.info(p))
	}
	return out
}

func (s CityService) info(p costs.CityProfile) CityInfo {
	return CityInfo{
		ID:           cityKey(p.Name),
		Name:         p.Name,
		State:        p.State,
		Country:      s.Catalog.Country,
		CostIndex:    p.CostIndex,
		Popularity:   p.Popularity,
		BestTime:     p.BestTime,
		AvgCost:      p.AvgCost,
		WeatherScore: p.WeatherScore,
		CultureScore: p.CultureScore,
		Highlights:   p.Highlights,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
	}
}

func cityKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "")
}
