package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionLogger_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewActionLogger(&buf)

	obs.ObserveAction(context.Background(), ActionEvent{
		Action:    ActionFinalizeServiceOrder,
		ReceiptID: "r-1",
		Duration:  3 * time.Millisecond,
		Fields:    map[string]any{"status": "Concluída", "photo_count": 2},
	})

	line := buf.String()
	assert.Contains(t, line, "level=INFO")
	assert.Contains(t, line, "msg=fieldops_action")
	assert.Contains(t, line, "action=finalize-service-order")
	assert.Contains(t, line, "duration_ms=3")
	assert.Contains(t, line, "success=true")
	assert.Contains(t, line, "receipt_id=r-1")
	assert.Less(t, strings.Index(line, "photo_count=2"), strings.Index(line, "status="))
}

func TestActionLogger_RejectedAction(t *testing.T) {
	var buf bytes.Buffer
	obs := NewActionLogger(&buf)

	obs.ObserveAction(context.Background(), ActionEvent{Action: ActionCreateServiceOrder, Err: errors.New("boom")})

	line := buf.String()
	assert.Contains(t, line, "level=ERROR")
	assert.Contains(t, line, "success=false")
	assert.Contains(t, line, "error=boom")
	assert.NotContains(t, line, "receipt_id")
}

func TestCombineObservers(t *testing.T) {
	assert.IsType(t, NoopActionObserver{}, NewActionLogger(nil))
	assert.IsType(t, NoopActionObserver{}, NewSlogActionObserver(nil))
	assert.IsType(t, NoopActionObserver{}, combineObservers(nil))
	assert.IsType(t, NoopActionObserver{}, combineObservers([]ActionObserver{nil}))

	var got []string
	record := func(tag string) ActionObserver {
		return ActionObserverFunc(func(_ context.Context, e ActionEvent) {
			got = append(got, tag+":"+e.Action)
		})
	}

	single := record("a")
	require.NotNil(t, combineObservers([]ActionObserver{nil, single}))

	combineObservers([]ActionObserver{record("a"), nil, record("b")}).
		ObserveAction(context.Background(), ActionEvent{Action: "x"})
	assert.Equal(t, []string{"a:x", "b:x"}, got)
}
