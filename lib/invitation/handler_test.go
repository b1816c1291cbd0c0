package invitation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"recruiting-backend/lib/pipeline"
	"recruiting-backend/lib/utils/errs"
	invitationapimodels "recruiting-backend/models/api/invitation"
	dbmodels "recruiting-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeBoard struct {
	pipeline.Provider
	entry      *dbmodels.Phase
	insertErr  error
	candidates map[string]dbmodels.Candidate
	inserted   [][]dbmodels.Candidate
}

func (f *fakeBoard) EntryPhase() (dbmodels.Phase, error) {
	if f.entry == nil {
		return dbmodels.Phase{}, errs.ErrConfiguration
	}
	return *f.entry, nil
}

func (f *fakeBoard) Insert(ctx context.Context, list []dbmodels.Candidate) ([]dbmodels.Candidate, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, list)
	created := []dbmodels.Candidate{}
	for _, rec := range list {
		rec.ID = fmt.Sprintf("c%d", len(f.candidates)+1)
		f.candidates[rec.ID] = rec
		created = append(created, rec)
	}
	return created, nil
}

type fakeNotifier struct {
	err    error
	events chan invitationapimodels.InvitationEvent
}

func (f *fakeNotifier) SendInvitations(ctx context.Context, event invitationapimodels.InvitationEvent) error {
	f.events <- event
	return f.err
}

func entryPhase() *dbmodels.Phase {
	rec := dbmodels.Phase{PhaseOrder: 0, Name: "Contacto inicial"}
	rec.ID = "p0"
	return &rec
}

func getInstance(board *fakeBoard, notifier *fakeNotifier) (*impl, chan error) {
	board.candidates = map[string]dbmodels.Candidate{}
	done := make(chan error, 1)
	i := NewInstance(board, notifier, time.Second).(*impl)
	i.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	i.notified = func(err error) { done <- err }
	return i, done
}

func TestInvite(t *testing.T) {
	t.Run(`records without email are dropped`, func(t *testing.T) {
		board := &fakeBoard{entry: entryPhase()}
		notifier := &fakeNotifier{events: make(chan invitationapimodels.InvitationEvent, 1)}
		i, done := getInstance(board, notifier)

		result, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{
			{Name: "Ana", Email: "a@x.com"},
			{Name: "Luis", Email: " "},
			{Name: "Eva", Email: "e@x.com", Phone: "555"},
		}, "r1")
		require.Nil(t, err)
		require.Len(t, result.Candidates, 2)
		require.Equal(t, 1, result.Skipped)
		for _, rec := range result.Candidates {
			require.Equal(t, "p0", rec.CurrentPhaseID)
			require.Equal(t, "r1", *rec.RequisitionID)
		}
		require.Nil(t, <-done)
		event := <-notifier.events
		require.Equal(t, invitationapimodels.InvitationsEvent, event.Event)
		require.Equal(t, "r1", event.RequisitionID)
		require.Len(t, event.Invitations, 2)
		require.Equal(t, invitationapimodels.DestinationPhase{Order: 0, Name: "Contacto inicial"}, event.DestinationPhase)
	})

	t.Run(`single valid record lands on entry phase`, func(t *testing.T) {
		board := &fakeBoard{entry: entryPhase()}
		notifier := &fakeNotifier{events: make(chan invitationapimodels.InvitationEvent, 1)}
		i, done := getInstance(board, notifier)

		result, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{
			{Name: "Ana", Email: "a@x.com"},
			{Name: "", Email: "b@x.com"},
		}, "")
		require.Nil(t, err)
		require.Len(t, result.Candidates, 1)
		require.Equal(t, "p0", result.Candidates[0].CurrentPhaseID)
		require.Equal(t, "Ana", result.Candidates[0].Name)
		require.Nil(t, result.Candidates[0].RequisitionID)
		<-done
	})

	t.Run(`notification failure does not fail invite`, func(t *testing.T) {
		board := &fakeBoard{entry: entryPhase()}
		notifier := &fakeNotifier{err: errors.New("webhook down"), events: make(chan invitationapimodels.InvitationEvent, 1)}
		i, done := getInstance(board, notifier)

		result, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{{Name: "Ana", Email: "a@x.com"}}, "r1")
		require.Nil(t, err)
		require.Len(t, result.Candidates, 1)
		require.NotNil(t, <-done)
		require.Len(t, board.candidates, 1)
	})

	t.Run(`no phases configured`, func(t *testing.T) {
		board := &fakeBoard{}
		i, _ := getInstance(board, &fakeNotifier{events: make(chan invitationapimodels.InvitationEvent, 1)})
		_, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{{Name: "Ana", Email: "a@x.com"}}, "r1")
		require.True(t, errors.Is(err, errs.ErrConfiguration))
		require.Empty(t, board.inserted)
	})

	t.Run(`insert failure is returned without notification`, func(t *testing.T) {
		board := &fakeBoard{entry: entryPhase(), insertErr: errs.Gateway(errors.New("db down"), "ошибка")}
		notifier := &fakeNotifier{events: make(chan invitationapimodels.InvitationEvent, 1)}
		i, _ := getInstance(board, notifier)
		_, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{{Name: "Ana", Email: "a@x.com"}}, "r1")
		require.True(t, errors.Is(err, errs.ErrGateway))
		require.Empty(t, notifier.events)
	})

	t.Run(`result holds inserted records`, func(t *testing.T) {
		// GetCandidate у fakeBoard не реализован, результат берется из ответа вставки
		board := &fakeBoard{entry: entryPhase()}
		i, done := getInstance(board, &fakeNotifier{events: make(chan invitationapimodels.InvitationEvent, 1)})
		result, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{
			{Name: "Ana", Email: "a@x.com"},
			{Name: "Eva", Email: "e@x.com"},
		}, "r1")
		require.Nil(t, err)
		require.Len(t, result.Candidates, 2)
		for _, rec := range result.Candidates {
			require.Equal(t, board.candidates[rec.ID], rec)
		}
		<-done
	})

	t.Run(`all records dropped`, func(t *testing.T) {
		board := &fakeBoard{entry: entryPhase()}
		i, _ := getInstance(board, &fakeNotifier{events: make(chan invitationapimodels.InvitationEvent, 1)})
		result, err := i.Invite(context.TODO(), []invitationapimodels.InvitationData{{Name: "Ana"}}, "r1")
		require.Nil(t, err)
		require.Empty(t, result.Candidates)
		require.Equal(t, 1, result.Skipped)
		require.Empty(t, board.inserted)
	})
}
