package cli

import "github.com/alexanderramin/fieldops/internal/nav"

// viewRouter builds a fresh view for every navigation frame.
type viewRouter struct {
	state *SharedState
}

var _ nav.Routes[View] = viewRouter{}

func (r viewRouter) resolve(f nav.Frame) View {
	return nav.Dispatch[View](f, r)
}

func (r viewRouter) Login() View            { return newLoginView(r.state) }
func (r viewRouter) ServiceOrderList() View { return newOrderListView(r.state) }
func (r viewRouter) ServiceOrderDetail(serviceOrderID string) View {
	return newOrderDetailView(r.state, serviceOrderID)
}
func (r viewRouter) ExecuteServiceOrder(serviceOrderID string) View {
	return newExecuteOrderView(r.state, serviceOrderID)
}
func (r viewRouter) EquipmentList() View { return newEquipmentListView(r.state) }
func (r viewRouter) EquipmentDetail(equipmentID string) View {
	return newEquipmentDetailView(r.state, equipmentID)
}
func (r viewRouter) Profile() View         { return newProfileView(r.state) }
func (r viewRouter) NewServiceOrder() View { return newNewOrderView(r.state) }

// screenTitles are the breadcrumb segments of frames below the active one.
var screenTitles = map[nav.Screen]string{
	nav.Login:               "Acesso",
	nav.ServiceOrderList:    "Ordens",
	nav.ServiceOrderDetail:  "OS",
	nav.ExecuteServiceOrder: "Execução",
	nav.EquipmentList:       "Equipamentos",
	nav.EquipmentDetail:     "Equipamento",
	nav.Profile:             "Perfil",
	nav.NewServiceOrder:     "Nova OS",
}

func screenTitle(s nav.Screen) string {
	if t, ok := screenTitles[s]; ok {
		return t
	}
	return screenTitles[nav.Login]
}
