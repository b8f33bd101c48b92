package nav

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStack_StartsAtRoot(t *testing.T) {
	s := NewStack(To(Login))

	require.Equal(t, 1, s.Len())
	assert.Equal(t, Login, s.Current().Screen)
	assert.Equal(t, s.Root(), s.Current())
}

func TestStack_LoginWalk(t *testing.T) {
	s := NewStack(To(Login))

	s.Push(To(ServiceOrderList))
	assert.Equal(t, ServiceOrderList, s.Current().Screen)

	assert.True(t, s.Pop())
	assert.Equal(t, Login, s.Current().Screen)

	assert.False(t, s.Pop())
	assert.Equal(t, Login, s.Current().Screen)
	assert.Equal(t, 1, s.Len())
}

func TestStack_PushCarriesParams(t *testing.T) {
	s := NewStack(To(Login))
	s.Push(ToOrder(ServiceOrderDetail, "so7"))
	s.Push(ToEquipment(EquipmentDetail, "e4"))

	assert.Equal(t, Params{EquipmentID: "e4"}, s.Current().Params)
	s.Pop()
	assert.Equal(t, Params{ServiceOrderID: "so7"}, s.Current().Params)
}

func TestStack_PushDoesNotDeduplicate(t *testing.T) {
	s := NewStack(To(Login))
	s.Push(To(Profile))
	s.Push(To(Profile))
	s.Push(To(Profile))

	assert.Equal(t, 4, s.Len())
}

func TestStack_PopAtRootIsIdempotent(t *testing.T) {
	for n := 0; n < 10; n++ {
		s := NewStack(ToOrder(ServiceOrderList, "x"))
		before := s.Frames()
		for i := 0; i < n; i++ {
			assert.False(t, s.Pop())
		}
		assert.Equal(t, before, s.Frames(), "after %d pops", n)
	}
}

func TestStack_PopToRoot(t *testing.T) {
	s := NewStack(To(Login))
	s.Push(To(ServiceOrderList))
	s.Push(ToOrder(ServiceOrderDetail, "so1"))
	s.Push(To(EquipmentList))

	s.PopToRoot()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, Login, s.Current().Screen)
}

func TestStack_FramesIsACopy(t *testing.T) {
	s := NewStack(To(Login))
	frames := s.Frames()
	frames[0] = To(Profile)

	assert.Equal(t, Login, s.Current().Screen)
}

func randomFrame(rng *rand.Rand) Frame {
	screen := Screens[rng.Intn(len(Screens))]
	f := Frame{Screen: screen}
	switch rng.Intn(3) {
	case 1:
		f.Params.ServiceOrderID = "so" + string(rune('1'+rng.Intn(7)))
	case 2:
		f.Params.EquipmentID = "e" + string(rune('1'+rng.Intn(5)))
	}
	return f
}

// TestStack_Invariants_NeverEmpty drives random push/pop sequences and checks
// the stack never drops below one frame and the root never changes.
func TestStack_Invariants_NeverEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		root := randomFrame(rng)
		s := NewStack(root)
		depth := 1

		for step := 0; step < 50; step++ {
			if rng.Intn(2) == 0 {
				s.Push(randomFrame(rng))
				depth++
			} else {
				popped := s.Pop()
				assert.Equal(t, depth > 1, popped, "trial %d step %d", trial, step)
				if popped {
					depth--
				}
			}

			require.GreaterOrEqual(t, s.Len(), 1, "trial %d step %d", trial, step)
			assert.Equal(t, depth, s.Len(), "trial %d step %d", trial, step)
			assert.Equal(t, root, s.Root(), "trial %d step %d", trial, step)
			_ = s.Current()
		}
	}
}

// TestStack_Invariants_PushPopInverse checks pop(push(S, F)) == S for random
// stacks and frames.
func TestStack_Invariants_PushPopInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		s := NewStack(randomFrame(rng))
		for i := rng.Intn(6); i > 0; i-- {
			s.Push(randomFrame(rng))
		}
		before := s.Frames()

		s.Push(randomFrame(rng))
		require.True(t, s.Pop(), "trial %d", trial)

		assert.Equal(t, before, s.Frames(), "trial %d", trial)
	}
}
