package nav

import (
	"fmt"
	"strings"
)

// Screen identifies one of the application's screens. The set is closed.
type Screen int

const (
	Login Screen = iota
	ServiceOrderList
	ServiceOrderDetail
	ExecuteServiceOrder
	EquipmentList
	EquipmentDetail
	Profile
	NewServiceOrder
)

// Screens lists every screen in declaration order.
var Screens = []Screen{
	Login,
	ServiceOrderList,
	ServiceOrderDetail,
	ExecuteServiceOrder,
	EquipmentList,
	EquipmentDetail,
	Profile,
	NewServiceOrder,
}

var screenNames = map[Screen]string{
	Login:               "Login",
	ServiceOrderList:    "ServiceOrderList",
	ServiceOrderDetail:  "ServiceOrderDetail",
	ExecuteServiceOrder: "ExecuteServiceOrder",
	EquipmentList:       "EquipmentList",
	EquipmentDetail:     "EquipmentDetail",
	Profile:             "Profile",
	NewServiceOrder:     "NewServiceOrder",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// ParseScreen resolves a canonical screen name, ignoring case.
func ParseScreen(name string) (Screen, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range Screens {
		if strings.EqualFold(screenNames[s], trimmed) {
			return s, nil
		}
	}
	return Login, fmt.Errorf("unknown screen %q", name)
}

// Routes has one handler per screen. Implementations are checked by the
// compiler, so adding a screen forces every router to handle it.
type Routes[T any] interface {
	Login() T
	ServiceOrderList() T
	ServiceOrderDetail(serviceOrderID string) T
	ExecuteServiceOrder(serviceOrderID string) T
	EquipmentList() T
	EquipmentDetail(equipmentID string) T
	Profile() T
	NewServiceOrder() T
}

// Dispatch calls the handler for the frame's screen, forwarding the
// parameters that screen takes. A screen value outside the closed set goes
// to Login.
func Dispatch[T any](f Frame, r Routes[T]) T {
	switch f.Screen {
	case ServiceOrderList:
		return r.ServiceOrderList()
	case ServiceOrderDetail:
		return r.ServiceOrderDetail(f.Params.ServiceOrderID)
	case ExecuteServiceOrder:
		return r.ExecuteServiceOrder(f.Params.ServiceOrderID)
	case EquipmentList:
		return r.EquipmentList()
	case EquipmentDetail:
		return r.EquipmentDetail(f.Params.EquipmentID)
	case Profile:
		return r.Profile()
	case NewServiceOrder:
		return r.NewServiceOrder()
	default:
		return r.Login()
	}
}
