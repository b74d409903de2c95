package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		price    float64
		expected float64
	}{
		{name: "cheap item pays handling fee", weight: 4, price: 50, expected: 15},
		{name: "expensive item waives handling fee", weight: 4, price: 150, expected: 10},
		{name: "fee boundary at exactly 100 still pays", weight: 0, price: 100, expected: 5},
		{name: "just above boundary waives", weight: 0, price: 100.01, expected: 0},
		{name: "zero weight zero price", weight: 0, price: 0, expected: 5},
		{name: "weight only", weight: 10, price: 200, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ShippingCost(tt.weight, tt.price), 1e-9)
		})
	}
}

func TestConsolidationDiscount(t *testing.T) {
	tests := []struct {
		itemCount int
		expected  float64
	}{
		{itemCount: 0, expected: 0},
		{itemCount: 1, expected: 0},
		{itemCount: 2, expected: 0},
		{itemCount: 3, expected: 0.05},
		{itemCount: 4, expected: 0.05},
		{itemCount: 5, expected: 0.10},
		{itemCount: 9, expected: 0.10},
		{itemCount: 10, expected: 0.20},
		{itemCount: 100, expected: 0.20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConsolidationDiscount(tt.itemCount),
			"itemCount=%d", tt.itemCount)
	}
}

func TestCampaignDiscountAmount(t *testing.T) {
	tests := []struct {
		name      string
		basePrice float64
		percent   float64
		expected  float64
	}{
		{name: "20 percent of 100", basePrice: 100, percent: 20, expected: 20},
		{name: "zero percent", basePrice: 100, percent: 0, expected: 0},
		{name: "full discount", basePrice: 59.90, percent: 100, expected: 59.90},
		{name: "zero base price", basePrice: 0, percent: 50, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, CampaignDiscountAmount(tt.basePrice, tt.percent), 1e-9)
		})
	}
}
