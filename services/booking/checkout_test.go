package booking

import (
	"context"
	"testing"
	"time"

	"terapiku/models"
	"terapiku/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCheckout(t *testing.T, repo *fakeSessionRepo) (*DefaultCheckoutService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	engine, _ := newTestEngine(repo)
	svc := &DefaultCheckoutService{
		Cache: client,
		Catalog: &fakeCatalog{services: map[string]models.Service{
			"svc-1": physioService(),
			"prd-1": kneeSupportProduct(),
		}},
		Engine: engine,
		TTL:    30 * time.Minute,
	}
	return svc, mr
}

func TestCheckoutStartAndGet(t *testing.T) {
	svc, mr := newTestCheckout(t, &fakeSessionRepo{})
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.True(t, mr.Exists(utils.CheckoutCachePrefix+session.SessionID))

	loaded, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, loaded.SessionID)
	assert.Equal(t, "Budi Santoso", loaded.PatientName)
	assert.Equal(t, "ther-1", loaded.TherapistID)
	assert.Empty(t, loaded.Cart.Items)
}

func TestCheckoutExpiresWithTTL(t *testing.T) {
	svc, mr := newTestCheckout(t, &fakeSessionRepo{})
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)

	mr.FastForward(31 * time.Minute)

	_, err = svc.Get(ctx, session.SessionID)
	assert.Error(t, err)
}

func TestCheckoutAddItemRoundTrip(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakeSessionRepo{})
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)

	slots := []models.AppointmentSlot{{Date: "2026-09-03", Time: "10:00"}}
	session, err = svc.AddItem(ctx, session.SessionID, "svc-1", false, slots)
	require.NoError(t, err)
	require.Len(t, session.Cart.Items, 1)
	assert.Equal(t, "svc-1-2026-09-03-10:00", session.Cart.Items[0].Key)

	// The mutation survives a reload from the store.
	loaded, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	require.Len(t, loaded.Cart.Items, 1)
	assert.Equal(t, slots, loaded.Cart.Items[0].Appointments)
}

func TestCheckoutAddItemUnknownService(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakeSessionRepo{})
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, session.SessionID, "nope", false, nil)
	assert.Error(t, err)

	// Failed adds leave the stored cart untouched.
	loaded, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, loaded.Cart.Items)
}

func TestCheckoutUpdateRemoveClear(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakeSessionRepo{})
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)
	session, err = svc.AddItem(ctx, session.SessionID, "prd-1", false, nil)
	require.NoError(t, err)
	key := session.Cart.Items[0].Key

	session, err = svc.UpdateQuantity(ctx, session.SessionID, key, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, session.Cart.Items[0].Quantity)

	session, err = svc.RemoveItem(ctx, session.SessionID, key)
	require.NoError(t, err)
	assert.Empty(t, session.Cart.Items)

	_, err = svc.AddItem(ctx, session.SessionID, "prd-1", false, nil)
	require.NoError(t, err)
	session, err = svc.Clear(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, session.Cart.Items)
}

func TestCheckoutConfirmCommitsAndDestroysSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	svc, mr := newTestCheckout(t, repo)
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session.SessionID, "svc-1", false,
		[]models.AppointmentSlot{{Date: "2026-09-03", Time: "10:00"}})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session.SessionID, "prd-1", false, nil)
	require.NoError(t, err)

	committed, err := svc.Confirm(ctx, session.SessionID, "trx-9")

	require.NoError(t, err)
	// The retail product is skipped; only the scheduled visit commits.
	require.Len(t, committed, 1)
	assert.Equal(t, "Terapi Fisik", committed[0].ServiceName)
	assert.Equal(t, "trx-9", committed[0].TransactionID)
	assert.Equal(t, 1, repo.count())
	assert.False(t, mr.Exists(utils.CheckoutCachePrefix+session.SessionID))
}

func TestCheckoutConfirmConflictKeepsSession(t *testing.T) {
	repo := &fakeSessionRepo{}
	repo.seed(models.TherapySession{
		TherapistID: "ther-1", Date: "2026-09-03", Time: "10:00",
		Status: models.StatusScheduled,
	})
	svc, mr := newTestCheckout(t, repo)
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, session.SessionID, "svc-1", false,
		[]models.AppointmentSlot{{Date: "2026-09-03", Time: "10:00"}})
	require.NoError(t, err)

	committed, err := svc.Confirm(ctx, session.SessionID, "trx-9")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Empty(t, committed)
	// The session survives so the colliding visit can be rebooked.
	assert.True(t, mr.Exists(utils.CheckoutCachePrefix+session.SessionID))
	loaded, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Len(t, loaded.Cart.Items, 1)
}

func TestCheckoutCancel(t *testing.T) {
	svc, mr := newTestCheckout(t, &fakeSessionRepo{})
	ctx := context.Background()

	session, err := svc.Start(ctx, testPatient, testTherapist)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, session.SessionID))
	assert.False(t, mr.Exists(utils.CheckoutCachePrefix+session.SessionID))
}

func TestCheckoutUnknownSession(t *testing.T) {
	svc, _ := newTestCheckout(t, &fakeSessionRepo{})

	_, err := svc.Get(context.Background(), "missing")
	assert.Error(t, err)

	_, err = svc.Confirm(context.Background(), "missing", "trx")
	assert.Error(t, err)
}
