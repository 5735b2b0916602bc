package mongo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
)

// A value that validated on write must still validate after a bson round
// trip. The codec drops empty slices, so the empty multi-select case is
// the one that regresses first.
func TestPropertyDoc_ValueValidAfterRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		typ   domain.PropertyType
		value domain.PropertyValue
	}{
		{"empty multi select", domain.PropertyTypeMultiSelect, domain.MultiSelectValue([]string{})},
		{"populated multi select", domain.PropertyTypeMultiSelect, domain.MultiSelectValue([]string{"a", "b"})},
		{"select", domain.PropertyTypeSelect, domain.SelectValue("high")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now().UTC().Truncate(time.Millisecond)
			doc := propertyDoc{
				ID:        primitive.NewObjectID(),
				TaskID:    primitive.NewObjectID(),
				Name:      "labels",
				Type:      tc.typ,
				Value:     &tc.value,
				CreatedAt: now,
				UpdatedAt: now,
			}

			raw, err := bson.Marshal(doc)
			require.NoError(t, err)

			var got propertyDoc
			require.NoError(t, bson.Unmarshal(raw, &got))

			require.NotNil(t, got.Value)
			require.Equal(t, got.Type, got.Value.Type)
			require.NoError(t, domain.ValidateValue(got.Type, *got.Value, got.Options))
		})
	}
}
