package costs

// CostComponents are structured per-city prices. TransportCost is a monthly pass.
type CostComponents struct {
	HotelCost     float64 `toml:"hotel_cost" json:"hotel_cost"`
	MealCost      float64 `toml:"meal_cost" json:"meal_cost"`
	TransportCost float64 `toml:"transport_cost" json:"transport_cost"`
	CoffeeCost    float64 `toml:"coffee_cost" json:"coffee_cost"`
	CostIndex     float64 `toml:"-" json:"cost_index"`
}

// Daily is the per-day spend these components imply at the base comfort level:
// hotel, three meals, a thirtieth of the transport pass, activities at 30% of
// the hotel and two coffees.
func (c CostComponents) Daily() float64 {
	return c.HotelCost + c.MealCost*3 + c.TransportCost/30 + c.HotelCost*0.3 + c.CoffeeCost*2
}

// ScaledTo keeps the component ratios and rescales them so Daily() equals daily.
func (c CostComponents) ScaledTo(daily float64) CostComponents {
	base := c.Daily()
	if base <= 0 || daily <= 0 {
		return c
	}
	f := daily / base
	return CostComponents{
		HotelCost:     c.HotelCost * f,
		MealCost:      c.MealCost * f,
		TransportCost: c.TransportCost * f,
		CoffeeCost:    c.CoffeeCost * f,
		CostIndex:     c.CostIndex,
	}
}
