package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate_AdvanceCoversPartOfTotal(t *testing.T) {
	// rent 5000 + electricity 1500 = 6500; tenant holds 4000 advance and
	// uses all of it, pays nothing directly
	alloc, err := Allocate(500000, 150000, 400000, 400000, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(650000), alloc.Total)
	assert.Equal(t, int64(400000), alloc.FromAdvance)
	assert.Equal(t, int64(0), alloc.DirectPayment)
	assert.Equal(t, int64(250000), alloc.RemainingBalance)
}

func TestAllocate_DirectPaymentSettlesShortfall(t *testing.T) {
	alloc, err := Allocate(500000, 150000, 400000, 400000, 250000)
	require.NoError(t, err)

	assert.Equal(t, int64(400000), alloc.FromAdvance)
	assert.Equal(t, int64(250000), alloc.DirectPayment)
	assert.Equal(t, int64(0), alloc.RemainingBalance)
}

func TestAllocate_AdvanceCappedAtTotal(t *testing.T) {
	// tenant asks to burn more advance than the charge; only the charge is
	// consumed
	alloc, err := Allocate(300000, 0, 1000000, 1000000, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(300000), alloc.FromAdvance)
	assert.Equal(t, int64(0), alloc.RemainingBalance)
}

func TestAllocate_OverpaymentIgnored(t *testing.T) {
	// direct payment above what is owed is not credited anywhere
	alloc, err := Allocate(300000, 0, 0, 0, 500000)
	require.NoError(t, err)

	assert.Equal(t, int64(300000), alloc.DirectPayment)
	assert.Equal(t, int64(0), alloc.RemainingBalance)
}

func TestAllocate_Conservation(t *testing.T) {
	cases := []struct {
		rent, electricity, available, use, direct int64
	}{
		{500000, 150000, 400000, 400000, 0},
		{500000, 150000, 400000, 400000, 250000},
		{500000, 0, 0, 0, 0},
		{500000, 120000, 700000, 700000, 100000},
		{1, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
	}
	for _, c := range cases {
		alloc, err := Allocate(c.rent, c.electricity, c.available, c.use, c.direct)
		require.NoError(t, err)
		assert.Equal(t, alloc.Total, alloc.FromAdvance+alloc.DirectPayment+alloc.RemainingBalance,
			"allocation must account for the full charge")
	}
}

func TestAllocate_RejectsInvalidInput(t *testing.T) {
	_, err := Allocate(-1, 0, 0, 0, 0)
	assert.Error(t, err)

	_, err = Allocate(500000, 0, 100000, 200000, 0)
	assert.Error(t, err, "cannot use more advance than available")

	_, err = Allocate(500000, 0, 100000, -5, 0)
	assert.Error(t, err)

	_, err = Allocate(500000, 0, 100000, 0, -5)
	assert.Error(t, err)
}
