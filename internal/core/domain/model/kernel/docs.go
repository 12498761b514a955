// Package kernel contains shared value objects used across the shop domain.
// It currently provides the UUID identifier type used for order identities.
// Kernel types are immutable, validate themselves, and carry no behavior
// specific to any single aggregate.
package kernel
