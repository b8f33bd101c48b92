package seed

import (
	"context"
	"fmt"

	"github.com/alexanderramin/fieldops/internal/db"
	"github.com/alexanderramin/fieldops/internal/domain"
	"github.com/alexanderramin/fieldops/internal/repository"
)

// ToUser converts the fixture user.
func (ds *Dataset) ToUser() *domain.User {
	u := ds.User
	return &domain.User{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Avatar: u.Avatar}
}

func (ds *Dataset) ToClients() []*domain.Client {
	out := make([]*domain.Client, 0, len(ds.Clients))
	for _, c := range ds.Clients {
		out = append(out, &domain.Client{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address})
	}
	return out
}

func (ds *Dataset) ToEquipment() []*domain.Equipment {
	out := make([]*domain.Equipment, 0, len(ds.Equipment))
	for _, e := range ds.Equipment {
		item := &domain.Equipment{
			ID:              e.ID,
			Name:            e.Name,
			Type:            e.Type,
			Serial:          e.Serial,
			Model:           e.Model,
			Status:          domain.EquipmentStatus(e.Status),
			Location:        e.Location,
			InstallDate:     e.InstallDate,
			LastMaintenance: e.LastMaintenance,
			NextMaintenance: e.NextMaintenance,
		}
		for _, a := range e.Attachments {
			item.Attachments = append(item.Attachments, domain.Attachment{
				ID: a.ID, Name: a.Name, Size: a.Size, Date: a.Date, Kind: domain.AttachmentKind(a.Type),
			})
		}
		for _, s := range e.ServiceHistory {
			item.ServiceHistory = append(item.ServiceHistory, domain.ServiceRecord{
				ID: s.ID, Title: s.Title, Technician: s.Technician, Date: s.Date, Observations: s.Observations,
			})
		}
		out = append(out, item)
	}
	return out
}

// ToServiceOrders resolves client and equipment references. The dataset must
// have passed Validate.
func (ds *Dataset) ToServiceOrders() []*domain.ServiceOrder {
	clients := make(map[string]*domain.Client)
	for _, c := range ds.ToClients() {
		clients[c.ID] = c
	}
	equipment := make(map[string]*domain.Equipment)
	for _, e := range ds.ToEquipment() {
		equipment[e.ID] = e
	}

	out := make([]*domain.ServiceOrder, 0, len(ds.ServiceOrders))
	for _, o := range ds.ServiceOrders {
		order := &domain.ServiceOrder{
			ID:          o.ID,
			OSNumber:    o.OSNumber,
			Status:      domain.ServiceOrderStatus(o.Status),
			ServiceType: o.ServiceType,
			Date:        o.Date,
			Time:        o.Time,
			Description: o.Description,
			Scheduled:   o.Scheduled,
		}
		if c, ok := clients[o.Client]; ok {
			order.Client = *c
		}
		for _, ref := range o.Equipment {
			if e, ok := equipment[ref]; ok {
				order.Equipment = append(order.Equipment, *e)
			}
		}
		for _, h := range o.History {
			order.History = append(order.History, domain.HistoryEntry{ID: h.ID, Action: h.Action, Date: h.Date})
		}
		out = append(out, order)
	}
	return out
}

// Apply writes the dataset into the store in a single transaction.
func Apply(ctx context.Context, uow db.UnitOfWork, ds *Dataset) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteUserRepo(tx).Upsert(ctx, ds.ToUser()); err != nil {
			return err
		}

		clients := repository.NewSQLiteClientRepo(tx)
		for _, c := range ds.ToClients() {
			if err := clients.Create(ctx, c); err != nil {
				return err
			}
		}

		equipment := repository.NewSQLiteEquipmentRepo(tx)
		for _, e := range ds.ToEquipment() {
			if err := equipment.Create(ctx, e); err != nil {
				return err
			}
		}

		orders := repository.NewSQLiteServiceOrderRepo(tx)
		for _, o := range ds.ToServiceOrders() {
			if err := orders.Create(ctx, o); err != nil {
				return fmt.Errorf("seeding service orders: %w", err)
			}
		}
		return nil
	})
}
