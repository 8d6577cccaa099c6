// Package shipment contains the ShippingTransaction aggregate and the value
// objects describing what is being shipped: origin and destination addresses,
// package characteristics, and delivery preferences.
//
// The aggregate tracks a linear workflow (draft through confirmed) via the
// Status state machine. Each workflow stage names the transaction sections
// that must be present before the stage can be left, making the progression
// rules explicit rather than inferred from presence checks.
package shipment
