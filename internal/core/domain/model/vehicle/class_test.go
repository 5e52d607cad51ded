package vehicle_test

import (
	"fmt"
	"testing"

	"freightmatch/internal/core/domain/model/vehicle"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClass_Validate(t *testing.T) {
	t.Run("should validate catalog classes", func(t *testing.T) {
		for _, class := range []vehicle.Class{vehicle.Moto, vehicle.Van, vehicle.Truck} {
			t.Run(fmt.Sprintf("should validate %s", class.String()), func(t *testing.T) {
				require.NoError(t, class.Validate())
			})
		}
	})

	t.Run("should reject classes outside the catalog", func(t *testing.T) {
		invalid := []string{"", "bicycle", "Moto", "MOTO", "van "}

		for _, s := range invalid {
			t.Run(fmt.Sprintf("should reject %q", s), func(t *testing.T) {
				err := vehicle.Class(s).Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestClassFromString(t *testing.T) {
	t.Run("should parse catalog identifiers", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected vehicle.Class
		}{
			{"moto", vehicle.Moto},
			{"van", vehicle.Van},
			{"truck", vehicle.Truck},
		}

		for _, tc := range testCases {
			class, err := vehicle.ClassFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, class)
		}
	})

	t.Run("should reject unknown identifiers", func(t *testing.T) {
		class, err := vehicle.ClassFromString("bicycle")

		require.Error(t, err)
		assert.Equal(t, vehicle.Class(""), class)
	})
}

func TestClasses(t *testing.T) {
	t.Run("should list the catalog in display order", func(t *testing.T) {
		specs := vehicle.Classes()

		require.Len(t, specs, 3)
		assert.Equal(t, vehicle.Moto, specs[0].Class)
		assert.Equal(t, vehicle.Van, specs[1].Class)
		assert.Equal(t, vehicle.Truck, specs[2].Class)
	})

	t.Run("should carry the fixed base prices", func(t *testing.T) {
		assert.InDelta(t, 15.00, vehicle.Moto.BasePrice(), 0.001)
		assert.InDelta(t, 60.00, vehicle.Van.BasePrice(), 0.001)
		assert.InDelta(t, 150.00, vehicle.Truck.BasePrice(), 0.001)
	})

	t.Run("should carry titles and capacities", func(t *testing.T) {
		moto := vehicle.Moto.Spec()
		assert.Equal(t, "Moto Frete", moto.Title)
		assert.Equal(t, "Up to 20kg", moto.Capacity)

		van := vehicle.Van.Spec()
		assert.Equal(t, "Utility / Van", van.Title)
		assert.Equal(t, "Up to 600kg", van.Capacity)

		truck := vehicle.Truck.Spec()
		assert.Equal(t, "Straight Truck", truck.Title)
		assert.Equal(t, "Up to 4 tons", truck.Capacity)
	})
}
