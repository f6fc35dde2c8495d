// Package costs supplies per-city daily cost baselines. Live values are derived
// from GDP per capita and the USD->INR rate; every failure degrades to the
// static table so callers always get a number.
package costs

import (
	"context"
	"encoding/json"
	"maps"
	"strings"
	"time"

	"tripplanner/internal/utils"

	"go.uber.org/zap"
)

// DefaultTTL is how long live cost signals are reused.
const DefaultTTL = time.Hour

// CityCost is a resolved daily baseline for one known city.
type CityCost struct {
	Name       string  `json:"name"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	DailyCost  float64 `json:"daily_cost"`
	CostIndex  string  `json:"cost_index"`
	Multiplier float64 `json:"multiplier"`
}

// MeanDailyCost averages the table; used for destinations that match no city.
func MeanDailyCost(table []CityCost) float64 {
	if len(table) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range table {
		sum += c.DailyCost
	}
	return sum / float64(len(table))
}

// SnapshotStore persists the computed city table between process restarts.
type SnapshotStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, payload []byte) error
}

// snapshot is the persisted form: a unix timestamp plus city -> daily cost.
type snapshot struct {
	Timestamp int64              `json:"timestamp"`
	Data      map[string]float64 `json:"data"`
}

// RefreshInfo describes the outcome of a forced refresh.
type RefreshInfo struct {
	Cities      int       `json:"cities"`
	Degraded    bool      `json:"degraded"`
	Reason      string    `json:"reason,omitempty"`
	RefreshedAt time.Time `json:"refresh_time"`
}

type Source struct {
	catalog    *Catalog
	indicators IndicatorFetcher
	rates      RateFetcher
	store      SnapshotStore
	clock      Clock
	ttl        time.Duration
	log        *zap.Logger

	daily  *Cache[float64]
	tables *Cache[[]CityCost]
	fx     *Cache[map[string]float64]
}

type Option func(*Source)

func WithClock(c Clock) Option { return func(s *Source) { s.clock = c } }

func WithTTL(ttl time.Duration) Option { return func(s *Source) { s.ttl = ttl } }

func WithStore(st SnapshotStore) Option { return func(s *Source) { s.store = st } }

func WithLogger(l *zap.Logger) Option { return func(s *Source) { s.log = l } }

func NewSource(catalog *Catalog, indicators IndicatorFetcher, rates RateFetcher, opts ...Option) *Source {
	s := &Source{
		catalog:    catalog,
		indicators: indicators,
		rates:      rates,
		clock:      SystemClock{},
		ttl:        DefaultTTL,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.daily = NewCache[float64](s.ttl, s.clock)
	s.tables = NewCache[[]CityCost](s.ttl, s.clock)
	s.fx = NewCache[map[string]float64](s.ttl, s.clock)
	return s
}

// Catalog exposes the static city table backing this source.
func (s *Source) Catalog() *Catalog {
	return s.catalog
}

// DailyCost returns the per-day baseline for city in country. It never fails:
// unknown countries and unreachable or malformed external data fall back to
// the static table, or FallbackDailyCost for cities outside it.
func (s *Source) DailyCost(ctx context.Context, city, country string) float64 {
	key := strings.ToLower(strings.TrimSpace(city)) + "|" + strings.ToLower(strings.TrimSpace(country))
	if v, ok := s.daily.Get(key); ok {
		return v
	}

	res := s.resolveDaily(ctx, city, country)
	if res.Degraded() {
		s.log.Warn("daily cost degraded to fallback",
			zap.String("city", city),
			zap.String("country", country),
			zap.String("reason", string(res.Reason)),
			zap.Error(res.Err),
		)
		return s.fallbackDaily(city)
	}

	s.daily.Put(key, res.Value, s.clock.Now())
	return res.Value
}

// Components derives structured per-day prices for a city from its baseline.
func (s *Source) Components(ctx context.Context, city, country string) CostComponents {
	out := s.catalog.Fallback.Components.ScaledTo(s.DailyCost(ctx, city, country))
	out.CostIndex = utils.RoundHalfEven(100*s.catalog.Multiplier(city), 0)
	return out
}

// CityCosts returns the home-country table in catalog order.
func (s *Source) CityCosts(ctx context.Context) []CityCost {
	table, _ := s.cityCosts(ctx, true)
	return table
}

// Refresh drops cached signals and recomputes the table from live data.
func (s *Source) Refresh(ctx context.Context) RefreshInfo {
	s.daily.Clear()
	s.tables.Clear()
	s.fx.Clear()

	table, res := s.cityCosts(ctx, false)
	return RefreshInfo{
		Cities:      len(table),
		Degraded:    res.Degraded(),
		Reason:      string(res.Reason),
		RefreshedAt: s.clock.Now().UTC(),
	}
}

// ExchangeRates returns conversion rates from the home currency.
func (s *Source) ExchangeRates(ctx context.Context) map[string]float64 {
	rates, res := s.latestRates(ctx, s.catalog.Currency)
	if res.Degraded() {
		s.log.Warn("exchange rates degraded to fallback",
			zap.String("reason", string(res.Reason)),
			zap.Error(res.Err),
		)
		return maps.Clone(s.catalog.Fallback.Rates)
	}
	return maps.Clone(rates)
}

func (s *Source) cityCosts(ctx context.Context, useSnapshot bool) ([]CityCost, Result) {
	key := s.catalog.CountryCode
	if t, ok := s.tables.Get(key); ok {
		return cloneTable(t), Result{}
	}

	if useSnapshot {
		if t, storedAt, ok := s.loadSnapshot(key); ok {
			s.tables.Put(key, t, storedAt)
			return cloneTable(t), Result{}
		}
	}

	base := s.baseDaily(ctx, key)
	if base.Degraded() {
		s.log.Warn("city cost table degraded to static values",
			zap.String("reason", string(base.Reason)),
			zap.Error(base.Err),
		)
		return s.tableFrom(s.catalog.StaticBaseDaily()), base
	}

	table := s.tableFrom(base.Value)
	now := s.clock.Now()
	s.tables.Put(key, table, now)
	s.saveSnapshot(key, table, now)
	return cloneTable(table), Result{}
}

func (s *Source) resolveDaily(ctx context.Context, city, country string) Result {
	code, ok := s.catalog.ResolveCountry(country)
	if !ok {
		return degraded(ReasonUnknownCountry, nil)
	}
	base := s.baseDaily(ctx, code)
	if base.Degraded() {
		return base
	}
	return Result{Value: utils.RoundHalfEven(base.Value*s.catalog.Multiplier(city), 0)}
}

// baseDaily derives the national per-day tourist baseline in the home currency.
func (s *Source) baseDaily(ctx context.Context, countryCode string) Result {
	gdp, err := s.indicators.GDPPerCapita(ctx, countryCode)
	if err != nil {
		return degraded(classify(err, ReasonIndicatorUnavailable, ReasonIndicatorMalformed), err)
	}

	rates, res := s.latestRates(ctx, "USD")
	if res.Degraded() {
		return res
	}
	rate := rates[s.catalog.Currency]
	if rate <= 0 {
		return degraded(ReasonRateMalformed, nil)
	}
	return Result{Value: baseDailyCost(gdp, rate)}
}

func (s *Source) latestRates(ctx context.Context, base string) (map[string]float64, Result) {
	base = strings.ToUpper(base)
	if rates, ok := s.fx.Get(base); ok {
		return rates, Result{}
	}
	rates, err := s.rates.Latest(ctx, base)
	if err != nil {
		return nil, degraded(classify(err, ReasonRateUnavailable, ReasonRateMalformed), err)
	}
	s.fx.Put(base, rates, s.clock.Now())
	return rates, Result{}
}

func (s *Source) tableFrom(baseDaily float64) []CityCost {
	out := make([]CityCost, 0, len(s.catalog.Cities))
	for _, c := range s.catalog.Cities {
		out = append(out, CityCost{
			Name:       c.Name,
			State:      c.State,
			Country:    s.catalog.Country,
			DailyCost:  utils.RoundHalfEven(baseDaily*c.Multiplier, 0),
			CostIndex:  c.CostIndex,
			Multiplier: c.Multiplier,
		})
	}
	return out
}

func (s *Source) fallbackDaily(city string) float64 {
	if p, ok := s.catalog.City(city); ok {
		return utils.RoundHalfEven(s.catalog.StaticBaseDaily()*p.Multiplier, 0)
	}
	return s.catalog.Fallback.DailyCost
}

func (s *Source) loadSnapshot(key string) ([]CityCost, time.Time, bool) {
	if s.store == nil {
		return nil, time.Time{}, false
	}
	payload, ok, err := s.store.Load(key)
	if err != nil {
		s.log.Warn("cost snapshot load failed", zap.String("key", key), zap.Error(err))
		return nil, time.Time{}, false
	}
	if !ok {
		return nil, time.Time{}, false
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.log.Warn("cost snapshot unreadable", zap.String("key", key), zap.Error(err))
		return nil, time.Time{}, false
	}
	storedAt := time.Unix(snap.Timestamp, 0)
	if IsExpired(storedAt, s.clock.Now(), s.ttl) {
		return nil, time.Time{}, false
	}

	static := s.tableFrom(s.catalog.StaticBaseDaily())
	for i := range static {
		if v, ok := snap.Data[static[i].Name]; ok && v > 0 {
			static[i].DailyCost = v
		}
	}
	return static, storedAt, true
}

func (s *Source) saveSnapshot(key string, table []CityCost, now time.Time) {
	if s.store == nil {
		return
	}
	snap := snapshot{Timestamp: now.Unix(), Data: make(map[string]float64, len(table))}
	for _, c := range table {
		snap.Data[c.Name] = c.DailyCost
	}
	payload, err := json.Marshal(snap)
	if err == nil {
		err = s.store.Save(key, payload)
	}
	if err != nil {
		s.log.Warn("cost snapshot save failed", zap.String("key", key), zap.Error(err))
	}
}

func cloneTable(t []CityCost) []CityCost {
	out := make([]CityCost, len(t))
	copy(out, t)
	return out
}
