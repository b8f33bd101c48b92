package domain

import "strings"

type Equipment struct {
	ID              string
	Name            string
	Type            string
	Serial          string
	Model           string
	Status          EquipmentStatus
	Location        string
	InstallDate     string
	LastMaintenance string
	NextMaintenance string
	Attachments     []Attachment
	ServiceHistory  []ServiceRecord
}

type Attachment struct {
	ID   string
	Name string
	Size string
	Date string
	Kind AttachmentKind
}

type ServiceRecord struct {
	ID           string
	Title        string
	Technician   string
	Date         string
	Observations string
}

// EquipmentFamily is a coarse grouping of the free-text equipment type used
// to pick an icon.
type EquipmentFamily int

const (
	FamilyOther EquipmentFamily = iota
	FamilyAirConditioning
	FamilyPump
	FamilyGenerator
)

// Family classifies the equipment type by keyword.
func (e *Equipment) Family() EquipmentFamily {
	t := strings.ToLower(e.Type)
	switch {
	case strings.Contains(t, "ar condicionado"):
		return FamilyAirConditioning
	case strings.Contains(t, "bomba"):
		return FamilyPump
	case strings.Contains(t, "gerador"):
		return FamilyGenerator
	default:
		return FamilyOther
	}
}

// Label is the "name (serial)" form used in equipment pickers.
func (e *Equipment) Label() string {
	return e.Name + " (" + e.Serial + ")"
}
