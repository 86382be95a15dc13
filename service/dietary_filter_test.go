package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eatscout-server/models"
)

func TestFilterPureVeg(t *testing.T) {
	tests := []struct {
		name  string
		venue models.Venue
		keep  bool
	}{
		{
			name:  "name hint",
			venue: models.Venue{Name: "Shree Krishna PURE VEG", Address: "Station Road"},
			keep:  true,
		},
		{
			name:  "address hint",
			venue: models.Venue{Name: "Annapurna", Address: "Vegetarian lane, Naupada"},
			keep:  true,
		},
		{
			name:  "regional hint",
			venue: models.Venue{Name: "Shuddh Shakahari Bhojanalaya", Address: ""},
			keep:  true,
		},
		{
			name:  "category hint",
			venue: models.Venue{Name: "Green Leaf", Categories: []string{"restaurant", "vegetarian_restaurant"}},
			keep:  true,
		},
		{
			name:  "no hints",
			venue: models.Venue{Name: "Seaside Grill", Address: "Harbour Road", Categories: []string{"restaurant"}},
			keep:  false,
		},
	}

	filter := NewDietaryFilter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := filter.FilterPureVeg([]models.Venue{tt.venue})
			if tt.keep {
				assert.Len(t, kept, 1)
			} else {
				assert.Empty(t, kept)
			}
		})
	}
}

func TestFilterPureVeg_PreservesOrder(t *testing.T) {
	venues := []models.Venue{
		{ID: "a", Name: "Pure Veg One"},
		{ID: "b", Name: "Steak House"},
		{ID: "c", Name: "Vegetarian Two"},
	}

	kept := NewDietaryFilter().FilterPureVeg(venues)
	assert.Equal(t, []string{"a", "c"}, []string{kept[0].ID, kept[1].ID})
}
