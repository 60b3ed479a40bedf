package order_test

import (
	"testing"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/order"
	"flowtrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, rawStatus string, sapArea kernel.Area) *order.ManufacturingOrder {
	t.Helper()
	o, err := order.NewManufacturingOrder(
		kernel.NewUUID(),
		"1000123",
		"0001",
		"MAT-77",
		"2026-01-10",
		"2026-02-20",
		decimal.NewFromInt(100),
		decimal.NewFromInt(40),
		rawStatus,
		sapArea,
	)
	require.NoError(t, err)
	return o
}

func TestNewManufacturingOrder(t *testing.T) {
	t.Run("starts system tracked in the derived area", func(t *testing.T) {
		o := newTestOrder(t, "REL", kernel.AreaWarehouse)

		assert.Equal(t, kernel.SourceSystem, o.Source())
		assert.Equal(t, kernel.AreaWarehouse, o.CurrentArea())
		assert.Equal(t, kernel.AreaWarehouse, o.SapArea())
		assert.False(t, o.Discrepancy())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("rejects empty number", func(t *testing.T) {
		_, err := order.NewManufacturingOrder(
			kernel.NewUUID(), "", "0001", "MAT-77", "", "",
			decimal.Zero, decimal.Zero, "", kernel.AreaOrders,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := order.NewManufacturingOrder(
			kernel.NewUUID(), "1000123", "0001", "MAT-77", "10.01.2026", "",
			decimal.Zero, decimal.Zero, "", kernel.AreaOrders,
		)
		require.Error(t, err)
	})

	t.Run("accepts business-rule violations", func(t *testing.T) {
		// Inverted dates and over-delivery are classifier material, not
		// construction failures.
		o, err := order.NewManufacturingOrder(
			kernel.NewUUID(), "1000123", "0001", "MAT-77", "2026-03-01", "2026-01-01",
			decimal.NewFromInt(-5), decimal.NewFromInt(10), "", kernel.AreaOrders,
		)
		require.NoError(t, err)
		assert.True(t, o.DeliveredQuantity().GreaterThan(o.OrderQuantity()))
	})

	t.Run("rejects zero-value id", func(t *testing.T) {
		_, err := order.NewManufacturingOrder(
			kernel.UUID{}, "1000123", "0001", "MAT-77", "", "",
			decimal.Zero, decimal.Zero, "", kernel.AreaOrders,
		)
		require.Error(t, err)
	})
}

func TestManufacturingOrder_ApplyMapping(t *testing.T) {
	t.Run("system order follows the derived area", func(t *testing.T) {
		o := newTestOrder(t, "REL", kernel.AreaWarehouse)

		require.NoError(t, o.ApplyMapping(kernel.AreaProduction))

		assert.Equal(t, kernel.AreaProduction, o.CurrentArea())
		assert.Equal(t, kernel.AreaProduction, o.SapArea())
		assert.False(t, o.Discrepancy())
	})

	t.Run("manual order keeps its area and flags the divergence", func(t *testing.T) {
		o := newTestOrder(t, "REL", kernel.AreaWarehouse)
		require.NoError(t, o.MoveTo(kernel.AreaProduction, kernel.AreaWarehouse))

		require.NoError(t, o.ApplyMapping(kernel.AreaWarehouse))

		assert.Equal(t, kernel.AreaProduction, o.CurrentArea())
		assert.Equal(t, kernel.AreaWarehouse, o.SapArea())
		assert.True(t, o.Discrepancy())
	})

	t.Run("manual order in agreement clears the flag", func(t *testing.T) {
		o := newTestOrder(t, "REL", kernel.AreaWarehouse)
		require.NoError(t, o.MoveTo(kernel.AreaProduction, kernel.AreaWarehouse))

		require.NoError(t, o.ApplyMapping(kernel.AreaProduction))

		assert.Equal(t, kernel.AreaProduction, o.CurrentArea())
		assert.False(t, o.Discrepancy())
	})

	t.Run("is idempotent", func(t *testing.T) {
		o := newTestOrder(t, "REL", kernel.AreaWarehouse)

		require.NoError(t, o.ApplyMapping(kernel.AreaProduction))
		first := snapshot(o)

		require.NoError(t, o.ApplyMapping(kernel.AreaProduction))
		assert.Equal(t, first, snapshot(o))
	})

	t.Run("rejects invalid area", func(t *testing.T) {
		o := newTestOrder(t, "REL", kernel.AreaWarehouse)
		require.Error(t, o.ApplyMapping(kernel.UnknownArea))
	})
}

func TestManufacturingOrder_MoveTo(t *testing.T) {
	o := newTestOrder(t, "REL", kernel.AreaWarehouse)

	require.NoError(t, o.MoveTo(kernel.AreaProduction, kernel.AreaWarehouse))

	assert.Equal(t, kernel.AreaProduction, o.CurrentArea())
	assert.Equal(t, kernel.SourceManual, o.Source())
	assert.Equal(t, kernel.AreaWarehouse, o.SapArea())
	assert.True(t, o.Discrepancy())

	// Moving to where the mapping table already points clears the flag.
	require.NoError(t, o.MoveTo(kernel.AreaWarehouse, kernel.AreaWarehouse))
	assert.False(t, o.Discrepancy())
	assert.Equal(t, kernel.SourceManual, o.Source())
}

func TestManufacturingOrder_ReportChanges(t *testing.T) {
	o := newTestOrder(t, "REL", kernel.AreaWarehouse)

	o.ReportChanges([]string{order.FieldSystemStatus, "Order_Quantity"})
	assert.True(t, o.HasChanges())
	assert.True(t, o.FieldChanged(order.FieldSystemStatus))
	assert.False(t, o.FieldChanged("Plant"))
	assert.ElementsMatch(t, []string{"System_Status", "Order_Quantity"}, o.ChangedFields())

	o.ReportChanges(nil)
	assert.False(t, o.HasChanges())
	assert.False(t, o.FieldChanged(order.FieldSystemStatus))
}

func TestManufacturingOrder_RefreshFromUpstream(t *testing.T) {
	o := newTestOrder(t, "REL", kernel.AreaWarehouse)
	require.NoError(t, o.MoveTo(kernel.AreaProduction, kernel.AreaWarehouse))

	err := o.RefreshFromUpstream(
		"0002", "MAT-88", "2026-02-01", "2026-03-01",
		decimal.NewFromInt(200), decimal.NewFromInt(50), "REL PCNF",
	)
	require.NoError(t, err)

	assert.Equal(t, "0002", o.Plant())
	assert.Equal(t, "REL PCNF", o.RawStatus())
	// Placement state survives the refresh.
	assert.Equal(t, kernel.AreaProduction, o.CurrentArea())
	assert.Equal(t, kernel.SourceManual, o.Source())
}

func TestRestoreManufacturingOrder(t *testing.T) {
	id := kernel.NewUUID()

	o, err := order.RestoreManufacturingOrder(
		id, "1000123", "0001", "MAT-77", "2026-01-10", "2026-02-20",
		decimal.NewFromInt(100), decimal.NewFromInt(40), "REL",
		kernel.AreaProduction, kernel.AreaWarehouse, kernel.SourceManual,
		true, []string{order.FieldSystemStatus}, true, 7,
	)
	require.NoError(t, err)

	assert.True(t, o.ID().IsEqual(id))
	assert.Equal(t, kernel.AreaProduction, o.CurrentArea())
	assert.Equal(t, kernel.AreaWarehouse, o.SapArea())
	assert.Equal(t, kernel.SourceManual, o.Source())
	assert.True(t, o.Discrepancy())
	assert.True(t, o.FieldChanged(order.FieldSystemStatus))
	assert.Equal(t, 7, o.Version())
}

func TestRestoreManufacturingOrder_Invalid(t *testing.T) {
	id := kernel.NewUUID()

	_, err := order.RestoreManufacturingOrder(
		id, "1000123", "", "", "", "", decimal.Zero, decimal.Zero, "",
		kernel.UnknownArea, kernel.AreaOrders, kernel.SourceSystem, false, nil, false, 1,
	)
	require.Error(t, err)

	_, err = order.RestoreManufacturingOrder(
		id, "1000123", "", "", "", "", decimal.Zero, decimal.Zero, "",
		kernel.AreaOrders, kernel.AreaOrders, kernel.SourceSystem, false, nil, false, 0,
	)
	require.Error(t, err)
}

func TestManufacturingOrder_Validate(t *testing.T) {
	var o order.ManufacturingOrder
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.ManufacturingOrder
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

// snapshot captures the externally observable placement state of an order.
func snapshot(o *order.ManufacturingOrder) [4]string {
	return [4]string{
		o.CurrentArea().String(),
		o.SapArea().String(),
		o.Source().String(),
		map[bool]string{true: "discrepant", false: "clean"}[o.Discrepancy()],
	}
}
