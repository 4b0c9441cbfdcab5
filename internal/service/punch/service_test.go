package punch

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/klfacil/erp-backend-go/internal/domain/punch"
	"github.com/klfacil/erp-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type txMarker struct{}

// stubTransaction replaces the pgx transaction wrapper with one that only
// marks the context, so repositories can record which calls ran inside it.
func stubTransaction(t *testing.T) {
	t.Helper()
	orig := runInTransaction
	runInTransaction = func(ctx context.Context, _ *database.DB, fn func(ctx context.Context) error) error {
		return fn(context.WithValue(ctx, txMarker{}, true))
	}
	t.Cleanup(func() { runInTransaction = orig })
}

type fakeEventRepo struct {
	events  map[string]punch.Event
	txCalls []string
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]punch.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, ev punch.Event) (punch.Event, error) {
	ev.CreatedAt = time.Now().UTC()
	f.events[ev.ID] = ev
	return ev, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (punch.Event, error) {
	if ctx.Value(txMarker{}) != nil {
		f.txCalls = append(f.txCalls, "GetByID")
	}
	ev, ok := f.events[id]
	if !ok {
		return punch.Event{}, punch.ErrEventNotFound
	}
	return ev, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, ev punch.Event) error {
	if ctx.Value(txMarker{}) != nil {
		f.txCalls = append(f.txCalls, "Update")
	}
	if _, ok := f.events[ev.ID]; !ok {
		return punch.ErrEventNotFound
	}
	f.events[ev.ID] = ev
	return nil
}

func (f *fakeEventRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, unitID string) ([]punch.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) List(ctx context.Context, filter punch.ListFilter) ([]punch.Event, int64, error) {
	var out []punch.Event
	for _, ev := range f.events {
		out = append(out, ev)
	}
	return out, int64(len(out)), nil
}

// adminContext builds a context carrying verified claims, the way the
// Verifier middleware would.
func adminContext(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, tokenString, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)
	token, err := ja.Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestPunchService_Register(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewPunchService(nil, repo)

	lat, lng := -23.55, -46.63
	resp, err := svc.Register(context.Background(), punch.RegisterRequest{
		EmployeeID: "emp-1",
		UnitID:     "unit-1",
		Type:       "CLOCK_IN",
		Timestamp:  "2025-03-10T08:00:00-03:00",
		Latitude:   &lat,
		Longitude:  &lng,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "CLOCK_IN", resp.Type)
	// Instants are stored and emitted in UTC
	assert.Equal(t, "2025-03-10T11:00:00Z", resp.Timestamp)
	assert.Nil(t, resp.CreatedBy)

	stored := repo.events[resp.ID]
	assert.Equal(t, punch.EventClockIn, stored.Type)
	assert.False(t, stored.Manual())
}

func TestPunchService_Register_InvalidType(t *testing.T) {
	svc := NewPunchService(nil, newFakeEventRepo())

	_, err := svc.Register(context.Background(), punch.RegisterRequest{
		EmployeeID: "emp-1",
		UnitID:     "unit-1",
		Type:       "LUNCH",
		Timestamp:  "2025-03-10T08:00:00-03:00",
	})

	assert.Error(t, err)
}

func TestPunchService_RegisterManual_SetsCreatedBy(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewPunchService(nil, repo)

	resp, err := svc.RegisterManual(adminContext(t, "admin-1"), punch.ManualEntryRequest{
		EmployeeID: "emp-1",
		UnitID:     "unit-1",
		Type:       "BREAK_START",
		Timestamp:  "2025-03-10T12:00:00-03:00",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.CreatedBy)
	assert.Equal(t, "admin-1", *resp.CreatedBy)
	assert.True(t, repo.events[resp.ID].Manual())
}

func TestPunchService_RegisterManual_RequiresClaims(t *testing.T) {
	svc := NewPunchService(nil, newFakeEventRepo())

	_, err := svc.RegisterManual(context.Background(), punch.ManualEntryRequest{
		EmployeeID: "emp-1",
		UnitID:     "unit-1",
		Type:       "BREAK_START",
		Timestamp:  "2025-03-10T12:00:00-03:00",
	})

	assert.Error(t, err)
}

func TestPunchService_Correct(t *testing.T) {
	stubTransaction(t)
	repo := newFakeEventRepo()
	svc := NewPunchService(nil, repo)

	created, err := svc.Register(context.Background(), punch.RegisterRequest{
		EmployeeID: "emp-1",
		UnitID:     "unit-1",
		Type:       "CLOCK_OUT",
		Timestamp:  "2025-03-10T17:00:00-03:00",
	})
	require.NoError(t, err)

	fixed := "2025-03-10T17:30:00-03:00"
	note := "device clock drifted"
	resp, err := svc.Correct(adminContext(t, "admin-2"), punch.CorrectRequest{
		ID:          created.ID,
		Timestamp:   &fixed,
		Observation: &note,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10T20:30:00Z", resp.Timestamp)
	require.NotNil(t, resp.EditedBy)
	assert.Equal(t, "admin-2", *resp.EditedBy)
	require.NotNil(t, resp.Observation)
	assert.Equal(t, note, *resp.Observation)
	assert.True(t, repo.events[created.ID].Edited())
}

func TestPunchService_Correct_NotFound(t *testing.T) {
	stubTransaction(t)
	svc := NewPunchService(nil, newFakeEventRepo())

	ts := "2025-03-10T17:30:00-03:00"
	_, err := svc.Correct(adminContext(t, "admin-2"), punch.CorrectRequest{
		ID:        "missing",
		Timestamp: &ts,
	})

	assert.ErrorIs(t, err, punch.ErrEventNotFound)
}

func TestPunchService_Correct_ReadAndWriteShareTransaction(t *testing.T) {
	stubTransaction(t)
	repo := newFakeEventRepo()
	svc := NewPunchService(nil, repo)

	created, err := svc.Register(context.Background(), punch.RegisterRequest{
		EmployeeID: "emp-1",
		UnitID:     "unit-1",
		Type:       "CLOCK_OUT",
		Timestamp:  "2025-03-10T17:00:00-03:00",
	})
	require.NoError(t, err)

	ts := "2025-03-10T17:30:00-03:00"
	_, err = svc.Correct(adminContext(t, "admin-2"), punch.CorrectRequest{
		ID:        created.ID,
		Timestamp: &ts,
	})
	require.NoError(t, err)

	// Both repository calls observed the transaction context
	assert.Equal(t, []string{"GetByID", "Update"}, repo.txCalls)
}
