// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the parcel back office. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - ShipmentResolver: computes effective agency/guide/destination over
//     the Package -> Pull -> Batch containment chain, classifies shipment
//     types, and reports attribute provenance
//   - HierarchyGuard: the single authority keeping the parent/child
//     package graph a forest, with guarded traversal utilities
//   - SackDistributor: deterministic capacity-based partitioning of
//     packages into sacks during auto-distribution
//
// The resolver and distributor are stateless and operate on in-memory
// snapshots; the hierarchy guard reads through a PackageSource port but
// never mutates anything.
package services
