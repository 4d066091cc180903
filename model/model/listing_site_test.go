package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListingSlug(t *testing.T) {
	assert.Equal(t, "4800-commerce-dr-dallas-tx",
		BuildListingSlug("4800 Commerce Dr", "Dallas", "TX"))

	// Punctuation collapses to single hyphens, no leading or trailing ones.
	assert.Equal(t, "100-w-5th-st-austin-tx",
		BuildListingSlug("100 W. 5th St.", "Austin", "TX"))

	// Deterministic.
	assert.Equal(t,
		BuildListingSlug("1 Main St", "Tulsa", "OK"),
		BuildListingSlug("1 Main St", "Tulsa", "OK"))

	// Capped at 80 characters without a dangling hyphen.
	long := BuildListingSlug(strings.Repeat("Very Long Address Segment ", 8), "Houston", "TX")
	assert.LessOrEqual(t, len(long), 80)
	assert.False(t, strings.HasSuffix(long, "-"))
}
