// Package parcel provides the Package aggregate root, the atomic shippable
// unit of the back office.
//
// The package includes:
//   - Package: recipient data, guide numbers, audit histories, hashtags,
//     and the references that place the package in the containment chain
//     (pull) and the split hierarchy (parent)
//   - Status: the delivery-pipeline state with its wire tags
//   - NoteFlag: normalized handling instructions detected in free text
//
// Key business rules:
//   - Guide numbers are globally unique; every change is audited
//   - Status changes and note edits prepend timestamped history entries
//   - The parent link is only set after the hierarchy guard approves it
//
// Effective shipping attributes (agency, guide, destination) are NOT
// computed here: the package stores raw references and the resolution over
// the Package -> Pull -> Batch chain lives in domain/services.
package parcel
