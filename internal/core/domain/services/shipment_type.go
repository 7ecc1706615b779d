package services

import "strings"

// ShipmentType classifies how a package travels.
type ShipmentType int

const (
	// TypeUnknown represents an invalid or undefined shipment type.
	TypeUnknown ShipmentType = iota

	// TypeLot: the package sits in a pull that belongs to a batch.
	TypeLot

	// TypeSack: the package sits in a pull outside any batch.
	TypeSack

	// TypeUnassigned: loose package with no agency and no agency guide.
	// Nothing has been arranged for it yet.
	TypeUnassigned

	// TypeIndividual: loose package with a transport agency of its own.
	TypeIndividual

	// TypeUnclassified: loose package that matched none of the rules
	// above (e.g. an agency guide number but no agency). Rendered with
	// the same tag as TypeUnassigned, but kept as a distinct variant so
	// the catch-all stays auditable.
	TypeUnclassified
)

// String returns the classification wire tag. TypeUnclassified
// deliberately shares the "sin_asignar" tag with TypeUnassigned.
func (t ShipmentType) String() string {
	switch t {
	case TypeLot:
		return "lote"
	case TypeSack:
		return "saca"
	case TypeUnassigned, TypeUnclassified:
		return "sin_asignar"
	case TypeIndividual:
		return "individual"
	default:
		return "desconocido"
	}
}

// DisplayName returns the human-readable label shown in the UI.
func (t ShipmentType) DisplayName() string {
	switch t {
	case TypeLot:
		return "Envío en Lote"
	case TypeSack:
		return "Envío en Saca"
	case TypeUnassigned, TypeUnclassified:
		return "Sin Asignar"
	case TypeIndividual:
		return "Envío Individual"
	default:
		return "Desconocido"
	}
}

// ShipmentType classifies the package, evaluated in this exact priority:
//
//  1. pull set and batch set            -> TypeLot
//  2. pull set, no batch                -> TypeSack
//  3. no pull, no agency, blank guide   -> TypeUnassigned
//  4. no pull, agency set               -> TypeIndividual
//
// Any combination not matched above (no pull, no agency, non-blank guide)
// is TypeUnclassified, a deliberate catch-all rather than an error. Containment
// outranks direct agency assignment: a package in a pull classifies by the
// pull even when its own agency field is set.
func (r ShipmentResolver) ShipmentType(s PackageShipment) ShipmentType {
	if s.Pull != nil {
		if s.Batch != nil {
			return TypeLot
		}
		return TypeSack
	}

	if s.Package.TransportAgencyID() == nil && strings.TrimSpace(s.Package.AgencyGuideNumber()) == "" {
		return TypeUnassigned
	}
	if s.Package.TransportAgencyID() != nil {
		return TypeIndividual
	}

	return TypeUnclassified
}
