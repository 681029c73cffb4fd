package entities

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingStatusNormalizesCase(t *testing.T) {
	for _, variant := range []string{"active", "Active", "ACTIVE", " aCtIvE "} {
		status, err := ParseListingStatus(variant)
		require.NoError(t, err, variant)
		assert.Equal(t, StatusActive, status)
	}

	for raw, want := range map[string]ListingStatus{
		"pending":  StatusPending,
		"sold":     StatusSold,
		"inactive": StatusInactive,
	} {
		status, err := ParseListingStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, want, status)
	}

	_, err := ParseListingStatus("archived")
	assert.Error(t, err)
}

func TestNewValidatedListing(t *testing.T) {
	owner := uuid.New()

	listing := NewListing("Villa", 100000, owner)
	validated, err := NewValidatedListing(listing)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, validated.GetListing().Status)

	_, err = NewValidatedListing(NewListing("", 100000, owner))
	assert.Error(t, err)

	_, err = NewValidatedListing(NewListing("Villa", 0, owner))
	assert.Error(t, err)

	_, err = NewValidatedListing(NewListing("Villa", 100000, uuid.Nil))
	assert.Error(t, err)

	negative := NewListing("Villa", 100000, owner)
	negative.Beds = -1
	_, err = NewValidatedListing(negative)
	assert.Error(t, err)
}
