package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

type stoppableFunc func(ctx context.Context) error

func (f stoppableFunc) Shutdown(ctx context.Context) error { return f(ctx) }

func TestStopCallsEveryStoppable(t *testing.T) {
	var order []string
	first := stoppableFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		order = append(order, "first")
		return errors.New("boom")
	})
	second := stoppableFunc(func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	Stop(time.Second, logging.NewNop(), first, second)

	assert.Equal(t, []string{"first", "second"}, order)
}
