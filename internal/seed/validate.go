package seed

import (
	"fmt"

	"github.com/alexanderramin/fieldops/internal/domain"
)

// Validate checks ids, enum values and references. It returns every problem
// found rather than stopping at the first.
func Validate(ds *Dataset) []error {
	var errs []error

	if ds.User.ID == "" {
		errs = append(errs, fmt.Errorf("user.id is required"))
	}
	if ds.User.Name == "" {
		errs = append(errs, fmt.Errorf("user.name is required"))
	}

	clientRefs := make(map[string]bool)
	for i, c := range ds.Clients {
		prefix := fmt.Sprintf("clients[%d]", i)
		errs = append(errs, checkID(prefix, c.ID, clientRefs)...)
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	equipmentRefs := make(map[string]bool)
	attachmentRefs := make(map[string]bool)
	recordRefs := make(map[string]bool)
	for i, e := range ds.Equipment {
		errs = append(errs, validateEquipment(fmt.Sprintf("equipment[%d]", i), e, equipmentRefs, attachmentRefs, recordRefs)...)
	}

	orderRefs := make(map[string]bool)
	historyRefs := make(map[string]bool)
	for i, o := range ds.ServiceOrders {
		prefix := fmt.Sprintf("service_orders[%d]", i)
		errs = append(errs, checkID(prefix, o.ID, orderRefs)...)

		if o.OSNumber == "" {
			errs = append(errs, fmt.Errorf("%s.os_number is required", prefix))
		}
		if !domain.ServiceOrderStatus(o.Status).Valid() {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, o.Status))
		}
		if o.Client == "" {
			errs = append(errs, fmt.Errorf("%s.client is required", prefix))
		} else if !clientRefs[o.Client] {
			errs = append(errs, fmt.Errorf("%s.client: ref %q not found in clients", prefix, o.Client))
		}

		linked := make(map[string]bool)
		for j, ref := range o.Equipment {
			switch {
			case !equipmentRefs[ref]:
				errs = append(errs, fmt.Errorf("%s.equipment[%d]: ref %q not found in equipment", prefix, j, ref))
			case linked[ref]:
				errs = append(errs, fmt.Errorf("%s.equipment[%d]: duplicate ref %q", prefix, j, ref))
			}
			linked[ref] = true
		}
		for j, h := range o.History {
			hp := fmt.Sprintf("%s.history[%d]", prefix, j)
			errs = append(errs, checkID(hp, h.ID, historyRefs)...)
			if h.Action == "" {
				errs = append(errs, fmt.Errorf("%s.action is required", hp))
			}
		}
	}

	return errs
}

func validateEquipment(prefix string, e EquipmentRecord, equipmentRefs, attachmentRefs, recordRefs map[string]bool) []error {
	var errs []error

	errs = append(errs, checkID(prefix, e.ID, equipmentRefs)...)
	if e.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if e.Type == "" {
		errs = append(errs, fmt.Errorf("%s.type is required", prefix))
	}
	if !domain.EquipmentStatus(e.Status).Valid() {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, e.Status))
	}
	for j, a := range e.Attachments {
		ap := fmt.Sprintf("%s.attachments[%d]", prefix, j)
		errs = append(errs, checkID(ap, a.ID, attachmentRefs)...)
		if !domain.AttachmentKind(a.Type).Valid() {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", ap, a.Type))
		}
	}
	for j, s := range e.ServiceHistory {
		sp := fmt.Sprintf("%s.service_history[%d]", prefix, j)
		errs = append(errs, checkID(sp, s.ID, recordRefs)...)
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", sp))
		}
	}
	return errs
}

func checkID(prefix, id string, seen map[string]bool) []error {
	if id == "" {
		return []error{fmt.Errorf("%s.id is required", prefix)}
	}
	if seen[id] {
		return []error{fmt.Errorf("%s.id: duplicate id %q", prefix, id)}
	}
	seen[id] = true
	return nil
}
