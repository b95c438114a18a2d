package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
	"github.com/aosipenko-sketch/fleet-dashboard/internal/reconciler"
)

func testRegistry(ttl time.Duration) *Registry {
	companies := []models.Company{
		{Key: "Nordik", Name: "Nordik Windows Inc", VehicleCount: 6},
		{Key: "Lipton", Name: "Lipton", VehicleCount: 3},
	}
	return NewRegistry(reconciler.New(companies, nil, nil), ttl)
}

func testUser() models.User {
	return models.User{Name: "Alex Williams", Email: "alex.williams@example.com"}
}

func TestRegistry_CreateAndGet(t *testing.T) {
	reg := testRegistry(time.Minute)

	sess := reg.Create(testUser())
	assert.NotEmpty(t, sess.ID())
	assert.Equal(t, "alex.williams@example.com", sess.User().Email)

	got, ok := reg.Get(sess.ID())
	assert.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = reg.Get("no-such-session")
	assert.False(t, ok)
}

func TestRegistry_Delete(t *testing.T) {
	reg := testRegistry(time.Minute)
	sess := reg.Create(testUser())

	reg.Delete(sess.ID())
	_, ok := reg.Get(sess.ID())
	assert.False(t, ok)
}

func TestRegistry_SessionsExpire(t *testing.T) {
	reg := testRegistry(50 * time.Millisecond)
	sess := reg.Create(testUser())

	time.Sleep(80 * time.Millisecond)
	_, ok := reg.Get(sess.ID())
	assert.False(t, ok)
}

func TestRegistry_GetSlidesExpiry(t *testing.T) {
	reg := testRegistry(100 * time.Millisecond)
	sess := reg.Create(testUser())

	// Keep touching the session past the original TTL.
	for i := 0; i < 3; i++ {
		time.Sleep(60 * time.Millisecond)
		_, ok := reg.Get(sess.ID())
		assert.True(t, ok)
	}
}

func TestSession_StartsEmpty(t *testing.T) {
	reg := testRegistry(time.Minute)
	sess := reg.Create(testUser())

	assert.Empty(t, sess.Fleet.Current().Company)
	assert.Empty(t, sess.Vehicles.Items())
	assert.Empty(t, sess.Drivers.Items())
	assert.Empty(t, sess.Board.Tasks())
	assert.Equal(t, models.DefaultWidgets(), sess.Layout.Widgets())
}

func TestSession_SelectCompanyRebuildsViewState(t *testing.T) {
	reg := testRegistry(time.Minute)
	sess := reg.Create(testUser())

	assert.True(t, sess.SelectCompany(context.Background(), "Nordik"))

	assert.Len(t, sess.Vehicles.Items(), 6)
	assert.Len(t, sess.Drivers.Items(), 6)
	assert.NotEmpty(t, sess.Board.Tasks())
}

func TestSession_SelectCompanyDiscardsLocalEdits(t *testing.T) {
	reg := testRegistry(time.Minute)
	sess := reg.Create(testUser())
	sess.SelectCompany(context.Background(), "Nordik")

	sess.Vehicles.BeginEdit(sess.Vehicles.Items()[0].ID)
	sess.Vehicles.UpdateDraft("name", "Renamed")
	sess.DismissBanner()
	assert.True(t, sess.BannerDismissed())

	sess.SelectCompany(context.Background(), "Lipton")

	assert.Len(t, sess.Vehicles.Items(), 3)
	_, editing := sess.Vehicles.Draft()
	assert.False(t, editing)
	assert.False(t, sess.BannerDismissed())
}

func TestSession_LayoutSurvivesCompanySwitch(t *testing.T) {
	reg := testRegistry(time.Minute)
	sess := reg.Create(testUser())
	sess.SelectCompany(context.Background(), "Nordik")

	sess.Layout.ToggleEditMode()
	sess.Layout.Reorder(0, 2)
	sess.Layout.Remove(models.WidgetMail)
	arranged := sess.Layout.Widgets()

	sess.SelectCompany(context.Background(), "Lipton")
	assert.Equal(t, arranged, sess.Layout.Widgets())
}
