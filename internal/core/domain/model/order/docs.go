// Package order contains the ManufacturingOrder aggregate.
//
// A manufacturing order moves through the four pipeline areas. Its placement is
// either system-tracked (continuously derived from the status mapping table) or
// manually chosen by an operator. Manual placement is sticky: mapping
// recomputation refreshes only the derived reference area and the discrepancy
// flag, never the chosen area.
package order
