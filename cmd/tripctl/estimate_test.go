package main

import (
	"testing"

	"tripplanner/internal/budget"

	"github.com/stretchr/testify/assert"
)

func TestParseDestination(t *testing.T) {
	cases := map[string]budget.Destination{
		"Goa":             {Name: "Goa"},
		" Paris@France:3": {Name: "Paris", Country: "France", Days: 3},
		"Kochi:2":         {Name: "Kochi", Days: 2},
		"Lisbon@Portugal": {Name: "Lisbon", Country: "Portugal"},
		"Odd:name":        {Name: "Odd:name"},
	}
	for in, want := range cases {
		assert.Equal(t, want, parseDestination(in), in)
	}
}
