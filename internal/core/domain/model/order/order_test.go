package order_test

import (
	"testing"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/order"
	"freightmatch/internal/core/domain/model/vehicle"
	"freightmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, latitude, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		vehicle.Van,
		"Av. Conde da Boa Vista, 100",
		mustGeoPoint(t, -8.063169, -34.871139),
		vehicle.Van.BasePrice(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with no proof photo", func(t *testing.T) {
		id := kernel.NewUUID()
		point := mustGeoPoint(t, -8.05, -34.90)

		before := time.Now()
		o, err := order.NewOrder(id, vehicle.Moto, "Rua da Aurora, 50", point, 15.00)
		after := time.Now()

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, vehicle.Moto, o.VehicleClass())
		assert.Equal(t, "Rua da Aurora, 50", o.Destination())
		assert.True(t, o.DestinationPoint().IsEqual(point))
		assert.InDelta(t, 15.00, o.Price(), 0.001)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.ProofPhoto())
		assert.False(t, o.IsActive())
		assert.False(t, o.CreatedAt().Before(before))
		assert.False(t, o.CreatedAt().After(after))
	})

	t.Run("should reject zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.NewOrder(id, vehicle.Moto, "somewhere", mustGeoPoint(t, 0, 0), 10)

		require.Error(t, err)
	})

	t.Run("should reject unknown vehicle class", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), vehicle.Class("bicycle"), "somewhere", mustGeoPoint(t, 0, 0), 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty destination", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), vehicle.Moto, "", mustGeoPoint(t, 0, 0), 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), vehicle.Moto, "somewhere", mustGeoPoint(t, 0, 0), -1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should allow zero price", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), vehicle.Moto, "somewhere", mustGeoPoint(t, 0, 0), 0)

		require.NoError(t, err)
		assert.InDelta(t, 0, o.Price(), 0.001)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore delivered order with proof photo", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.UnixMilli(1700000000000)
		proof := "file:///photos/proof-1.jpg"

		o, err := order.RestoreOrder(
			id,
			vehicle.Truck,
			"Cais do Apolo, 77",
			mustGeoPoint(t, -8.06, -34.87),
			150.00,
			order.Delivered,
			createdAt,
			&proof,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.ProofPhoto())
		assert.Equal(t, proof, *o.ProofPhoto())
	})

	t.Run("should restore accepted order without proof photo", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			vehicle.Van,
			"somewhere",
			mustGeoPoint(t, 0, 0),
			60.00,
			order.Accepted,
			time.Now(),
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.IsActive())
		assert.Nil(t, o.ProofPhoto())
	})

	t.Run("should reject proof photo on non-delivered order", func(t *testing.T) {
		proof := "file:///photos/proof-1.jpg"

		for _, status := range []order.Status{order.Pending, order.Accepted} {
			_, err := order.RestoreOrder(
				kernel.NewUUID(),
				vehicle.Van,
				"somewhere",
				mustGeoPoint(t, 0, 0),
				60.00,
				status,
				time.Now(),
				&proof,
			)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not a valid status to carry a proof photo")
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			vehicle.Van,
			"somewhere",
			mustGeoPoint(t, 0, 0),
			60.00,
			order.Unknown,
			time.Now(),
			nil,
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should accept pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.IsActive())
	})

	t.Run("should reject double accept and leave the order unchanged", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())

		err := o.Accept()

		require.Error(t, err)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should reject accepting a delivered order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())
		require.NoError(t, o.Deliver(nil))

		err := o.Accept()

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_Deliver(t *testing.T) {
	t.Run("should deliver accepted order with proof photo", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())
		proof := "file:///photos/proof-7.jpg"

		err := o.Deliver(&proof)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.IsActive())
		require.NotNil(t, o.ProofPhoto())
		assert.Equal(t, proof, *o.ProofPhoto())
	})

	t.Run("should deliver accepted order without proof photo", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())

		err := o.Deliver(nil)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Nil(t, o.ProofPhoto())
	})

	t.Run("should reject delivering a pending order and keep proof absent", func(t *testing.T) {
		o := newPendingOrder(t)
		proof := "file:///photos/proof-7.jpg"

		err := o.Deliver(&proof)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.ProofPhoto())
	})

	t.Run("should reject double delivery", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept())
		require.NoError(t, o.Deliver(nil))

		err := o.Deliver(nil)

		require.Error(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		first := newPendingOrder(t)
		second := newPendingOrder(t)

		assert.True(t, first.IsEqual(first))
		assert.False(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(nil))
	})
}
