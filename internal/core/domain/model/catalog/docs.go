// Package catalog provides the reference data the shipment flow hangs off:
// destination locations, inter-city transport agencies, and last-mile
// delivery agencies.
//
// The package includes:
//   - Location: an immutable (city, province) value object
//   - TransportAgency: an inter-city carrier with a soft active flag
//   - DeliveryAgency: a last-mile handler bound to one Location
//
// Catalog entries are referenced by ID from packages, pulls, and batches.
// They are never deleted while referenced; agencies are deactivated instead
// so historical shipments keep a resolvable reference.
package catalog
