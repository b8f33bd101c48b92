package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRoutes returns a description of the handler that ran.
type recordingRoutes struct{}

func (recordingRoutes) Login() string            { return "Login" }
func (recordingRoutes) ServiceOrderList() string { return "ServiceOrderList" }
func (recordingRoutes) ServiceOrderDetail(id string) string {
	return "ServiceOrderDetail:" + id
}
func (recordingRoutes) ExecuteServiceOrder(id string) string {
	return "ExecuteServiceOrder:" + id
}
func (recordingRoutes) EquipmentList() string { return "EquipmentList" }
func (recordingRoutes) EquipmentDetail(id string) string {
	return "EquipmentDetail:" + id
}
func (recordingRoutes) Profile() string         { return "Profile" }
func (recordingRoutes) NewServiceOrder() string { return "NewServiceOrder" }

func TestDispatch_ForwardsParams(t *testing.T) {
	r := recordingRoutes{}

	assert.Equal(t, "Login", Dispatch[string](To(Login), r))
	assert.Equal(t, "ServiceOrderList", Dispatch[string](To(ServiceOrderList), r))
	assert.Equal(t, "ServiceOrderDetail:so1", Dispatch[string](ToOrder(ServiceOrderDetail, "so1"), r))
	assert.Equal(t, "ExecuteServiceOrder:so2", Dispatch[string](ToOrder(ExecuteServiceOrder, "so2"), r))
	assert.Equal(t, "EquipmentList", Dispatch[string](To(EquipmentList), r))
	assert.Equal(t, "EquipmentDetail:e999", Dispatch[string](ToEquipment(EquipmentDetail, "e999"), r))
	assert.Equal(t, "Profile", Dispatch[string](To(Profile), r))
	assert.Equal(t, "NewServiceOrder", Dispatch[string](To(NewServiceOrder), r))
}

func TestDispatch_DetailWithoutParamGetsEmptyID(t *testing.T) {
	assert.Equal(t, "EquipmentDetail:", Dispatch[string](To(EquipmentDetail), recordingRoutes{}))
}

func TestDispatch_OutOfRangeFallsBackToLogin(t *testing.T) {
	assert.Equal(t, "Login", Dispatch[string](To(Screen(99)), recordingRoutes{}))
	assert.Equal(t, "Login", Dispatch[string](To(Screen(-1)), recordingRoutes{}))
}

func TestParseScreen(t *testing.T) {
	for _, s := range Screens {
		got, err := ParseScreen(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseScreen(" equipmentlist ")
	require.NoError(t, err)
	assert.Equal(t, EquipmentList, got)

	_, err = ParseScreen("Dashboard")
	assert.Error(t, err)
}

func TestScreenString(t *testing.T) {
	assert.Equal(t, "NewServiceOrder", NewServiceOrder.String())
	assert.Equal(t, "Screen(42)", Screen(42).String())
	assert.Len(t, Screens, 8)
}
