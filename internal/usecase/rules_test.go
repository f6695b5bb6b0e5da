package usecase_test

import (
	"testing"

	"github.com/rauanCheb33/oop-final-project/internal/data/entity"
	"github.com/rauanCheb33/oop-final-project/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedForAge(t *testing.T) {
	tests := []struct {
		name        string
		restriction int
		viewerAge   int
		want        bool
	}{
		{"older than restriction", 16, 30, true},
		{"exactly at restriction", 18, 18, true},
		{"one year below", 18, 17, false},
		{"unrestricted movie", 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movie := &entity.Movie{AgeRestriction: tt.restriction}
			assert.Equal(t, tt.want, usecase.AllowedForAge(movie, tt.viewerAge))
		})
	}
}

func TestPriceForTickets(t *testing.T) {
	movie := &entity.Movie{TicketPrice: decimal.NewFromInt(30)}

	price, err := usecase.PriceForTickets(movie, 3)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(90)), "3 tickets at 30 should cost 90, got %s", price)

	price, err = usecase.PriceForTickets(movie, 1)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(30)))
}

func TestPriceForTickets_FractionalPrice(t *testing.T) {
	movie := &entity.Movie{TicketPrice: decimal.RequireFromString("12.50")}

	price, err := usecase.PriceForTickets(movie, 3)
	require.NoError(t, err)
	assert.Equal(t, "37.50", price.StringFixed(2))
}

func TestPriceForTickets_NonPositiveQuantity(t *testing.T) {
	movie := &entity.Movie{TicketPrice: decimal.NewFromInt(30)}

	_, err := usecase.PriceForTickets(movie, 0)
	assert.ErrorIs(t, err, usecase.ErrNonPositiveQuantity)

	_, err = usecase.PriceForTickets(movie, -2)
	assert.ErrorIs(t, err, usecase.ErrNonPositiveQuantity)
}

func TestCanAfford(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    bool
	}{
		{"more than enough", "100", "90", true},
		{"exact match allowed", "60", "60", true},
		{"short by a cent", "59.99", "60", false},
		{"zero balance zero amount", "0", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := decimal.RequireFromString(tt.balance)
			amount := decimal.RequireFromString(tt.amount)
			assert.Equal(t, tt.want, usecase.CanAfford(balance, amount))
		})
	}
}

func TestHasSeats(t *testing.T) {
	assert.True(t, usecase.HasSeats(5, 3))
	assert.True(t, usecase.HasSeats(3, 3), "exact seat match is allowed")
	assert.False(t, usecase.HasSeats(2, 3))
	assert.False(t, usecase.HasSeats(0, 1))
}
