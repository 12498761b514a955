// Package order provides the order aggregate of the shop domain.
//
// The package includes:
//   - Order: the aggregate root carrying identity, product snapshots,
//     placement time, and lifecycle status
//   - Status: the lifecycle enumeration (PROCESSING, IN_DELIVERY, COMPLETED)
//
// Key business rules:
//   - Orders must have a valid unique identifier and at least one product
//   - Products are resolved snapshots: later catalog changes never affect
//     an already placed order
//   - orderedAt is set once at placement and never changes
//   - Status transitions are deliberately unrestricted: any status may be
//     replaced by any other, including itself; only statuses outside the
//     enumeration are rejected
//   - Status changes are copy-and-replace: ChangeStatus returns a new Order
//     value instead of mutating in place
package order
