package phase

import (
	"context"
	"testing"

	"recruiting-backend/lib/utils/errs"
	dbmodels "recruiting-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	list []dbmodels.Phase
	err  error
}

func (f *fakeStore) Create(ctx context.Context, rec dbmodels.Phase) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeStore) List(ctx context.Context) ([]dbmodels.Phase, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]dbmodels.Phase, len(f.list))
	copy(result, f.list)
	return result, nil
}

func newPhase(id string, order int) dbmodels.Phase {
	rec := dbmodels.Phase{PhaseOrder: order, Name: "phase " + id}
	rec.ID = id
	return rec
}

func TestRegistry(t *testing.T) {
	t.Run(`entry phase is minimum order`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Phase{newPhase("p5", 5), newPhase("p-1", -1), newPhase("p2", 2)}}
		registry := NewInstance(store, 0)
		require.Nil(t, registry.Load(context.TODO()))

		entry, err := registry.EntryPhase()
		require.Nil(t, err)
		require.Equal(t, "p-1", entry.ID)

		list := registry.List()
		require.Len(t, list, 3)
		require.Equal(t, "p-1", list[0].ID)
		require.Equal(t, "p2", list[1].ID)
		require.Equal(t, "p5", list[2].ID)

		rec, ok := registry.Get("p2")
		require.True(t, ok)
		require.Equal(t, 2, rec.PhaseOrder)
		_, ok = registry.Get("unknown")
		require.False(t, ok)
	})

	t.Run(`empty set is configuration error`, func(t *testing.T) {
		registry := NewInstance(&fakeStore{}, 0)
		_, err := registry.EntryPhase()
		require.True(t, errors.Is(err, errs.ErrConfiguration))

		require.Nil(t, registry.Load(context.TODO()))
		_, err = registry.EntryPhase()
		require.True(t, errors.Is(err, errs.ErrConfiguration))
	})

	t.Run(`duplicate order rejected, previous set kept`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Phase{newPhase("p0", 0), newPhase("p1", 1)}}
		registry := NewInstance(store, 0)
		require.Nil(t, registry.Load(context.TODO()))

		store.list = append(store.list, newPhase("dup", 1))
		err := registry.Load(context.TODO())
		require.True(t, errors.Is(err, errs.ErrConfiguration))
		require.Len(t, registry.List(), 2)
	})

	t.Run(`store failure is gateway error`, func(t *testing.T) {
		registry := NewInstance(&fakeStore{err: errors.New("db down")}, 0)
		err := registry.Load(context.TODO())
		require.True(t, errors.Is(err, errs.ErrGateway))
	})

	t.Run(`list is a copy`, func(t *testing.T) {
		store := &fakeStore{list: []dbmodels.Phase{newPhase("p0", 0)}}
		registry := NewInstance(store, 0)
		require.Nil(t, registry.Load(context.TODO()))
		list := registry.List()
		list[0].Name = "changed"
		require.Equal(t, "phase p0", registry.List()[0].Name)
	})
}
