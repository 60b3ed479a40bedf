package commands

import (
	"errors"

	"flowtrack/internal/pkg/errs"
	"flowtrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrIngestOrdersCommandIsNotConstructed = errors.New(
		"IngestOrdersCommand must be created via NewIngestOrdersCommand constructor",
	)
)

// OrderIngestRecord is one upstream order row together with its change report.
// ChangedFields lists the business fields that differ from the previous
// ingestion of the same order number; an empty list means no changes.
type OrderIngestRecord struct {
	Number            string
	Plant             string
	Material          string
	StartDate         string
	FinishDate        string
	OrderQuantity     decimal.Decimal
	DeliveredQuantity decimal.Decimal
	RawStatus         string
	ChangedFields     []string
}

// IngestOrdersCommand upserts a batch of upstream order records.
//
// New orders enter the pipeline system-tracked in the area their raw status
// derives. Known orders get their business fields refreshed and their change
// report recorded while the placement state (area, source, discrepancy) is left
// to the assignment rules.
type IngestOrdersCommand struct { //nolint:recvcheck //using for validation
	records []OrderIngestRecord

	guard guard.ConstructorGuard
}

// NewIngestOrdersCommand creates a command carrying the upstream records.
// Every record must carry an order number; an empty batch is a no-op.
func NewIngestOrdersCommand(records []OrderIngestRecord) (IngestOrdersCommand, error) {
	for _, record := range records {
		if record.Number == "" {
			return IngestOrdersCommand{}, errs.NewValueIsRequiredError("number")
		}
	}

	copied := make([]OrderIngestRecord, len(records))
	copy(copied, records)

	return IngestOrdersCommand{
		records: copied,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrIngestOrdersCommandIsNotConstructed if validation fails.
func (c IngestOrdersCommand) Validate() error {
	return c.guard.Validate(ErrIngestOrdersCommandIsNotConstructed)
}

// Records returns the upstream order records.
func (c IngestOrdersCommand) Records() []OrderIngestRecord {
	return c.records
}
