package roster_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/domain/entity"
	"github.com/jhoicas/Roster-api/internal/domain/roster"
)

func TestEventFor(t *testing.T) {
	state := roster.DefaultState(3)

	ev, ok := approster.EventFor(state, roster.Add(newEmployee("x")))
	require.True(t, ok)
	assert.Equal(t, 3, ev.EmployeeID)
	require.NotNil(t, ev.Employee)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, 3, ev.Total)

	name := "Grace"
	ev, ok = approster.EventFor(state, roster.Update(entity.EmployeePatch{ID: 2, FirstName: &name}))
	require.True(t, ok)
	assert.Equal(t, 2, ev.EmployeeID)

	ev, ok = approster.EventFor(state, roster.Delete(9))
	require.True(t, ok)
	assert.Equal(t, 9, ev.EmployeeID)
	assert.Nil(t, ev.Employee)

	_, ok = approster.EventFor(state, roster.SetLoading(true))
	assert.False(t, ok)
}

func TestChangeFeed_BufferLlenoDescarta(t *testing.T) {
	store := approster.NewStore(nil, 5, zerolog.Nop())
	feed := approster.NewChangeFeed(nopPublisher{}, 1, zerolog.Nop())
	detach := feed.Attach(store)
	defer detach()

	store.Delete(1)
	store.Delete(2)
	store.Delete(3)

	assert.Equal(t, int64(2), feed.Dropped())
	assert.Len(t, store.Employees(), 2)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, ports.ChangeEvent) error { return nil }
