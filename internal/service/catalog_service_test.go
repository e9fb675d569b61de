package service

import (
	"context"
	"testing"
	"time"

	"agencyledger/internal/apierror"
	"agencyledger/internal/dto"
	"agencyledger/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialService_Create(t *testing.T) {
	svc := NewMaterialService(newStubMaterialRepo())
	ctx := context.Background()

	m, err := svc.Create(ctx, dto.CreateMaterialRequest{Name: "  M SAND ", RatePerUnit: decp("61.456")})
	require.NoError(t, err)
	assert.Equal(t, "M SAND", m.Name)
	assert.Equal(t, "ton", m.Unit)
	assert.True(t, m.IsActive)
	assertDec(t, "61.46", m.RatePerUnit)

	_, err = svc.Create(ctx, dto.CreateMaterialRequest{Name: "M SAND", RatePerUnit: decp("1")})
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))

	_, err = svc.Create(ctx, dto.CreateMaterialRequest{Name: "DUST", RatePerUnit: decp("-1")})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	free, err := svc.Create(ctx, dto.CreateMaterialRequest{Name: "SAMPLE", Unit: "bag", RatePerUnit: decp("0")})
	require.NoError(t, err)
	assert.Equal(t, "bag", free.Unit)
}

func TestMaterialService_UpdateAndDeactivate(t *testing.T) {
	repo := newStubMaterialRepo(
		model.Material{ID: 1, Name: "M SAND", Unit: "ton", RatePerUnit: dec("50"), IsActive: true},
		model.Material{ID: 2, Name: "DUST", Unit: "ton", RatePerUnit: dec("56"), IsActive: true},
	)
	svc := NewMaterialService(repo)
	ctx := context.Background()

	m, err := svc.Update(ctx, 1, dto.UpdateMaterialRequest{Name: "M SAND", RatePerUnit: decp("63")})
	require.NoError(t, err)
	assertDec(t, "63", m.RatePerUnit)

	_, err = svc.Update(ctx, 1, dto.UpdateMaterialRequest{Name: "DUST", RatePerUnit: decp("63")})
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))

	_, err = svc.Update(ctx, 9, dto.UpdateMaterialRequest{Name: "X", RatePerUnit: decp("1")})
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))

	require.NoError(t, svc.SetActive(ctx, 2, false))
	active, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "M SAND", active[0].Name)

	all, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(svc.SetActive(ctx, 9, true)))
}

func TestOwnerService(t *testing.T) {
	svc := NewOwnerService(newStubOwnerRepo())
	ctx := context.Background()

	blank := "   "
	o, err := svc.Create(ctx, dto.CreateOwnerRequest{Name: " AARON ", ContactInfo: &blank})
	require.NoError(t, err)
	assert.Equal(t, "AARON", o.Name)
	assert.Nil(t, o.ContactInfo)
	assert.True(t, o.IsActive)

	_, err = svc.Create(ctx, dto.CreateOwnerRequest{Name: "AARON"})
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))

	_, err = svc.Update(ctx, o.OwnerID, dto.UpdateOwnerRequest{Name: " "})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.EqualError(t, err, "Owner name is required")

	phone := "9876543210"
	updated, err := svc.Update(ctx, o.OwnerID, dto.UpdateOwnerRequest{Name: "AARON K", ContactInfo: &phone})
	require.NoError(t, err)
	assert.Equal(t, "AARON K", updated.Name)
	assert.Equal(t, phone, *updated.ContactInfo)

	_, err = svc.Get(ctx, 404)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestVehicleService(t *testing.T) {
	repo := &stubVehicleRepo{}
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	owners := newStubOwnerRepo(model.Owner{ID: 1, Name: "AARON", IsActive: true}, model.Owner{ID: 2, Name: "BASIL", IsActive: true})
	svc := NewVehicleService(repo, owners, func() time.Time { return now })
	ctx := context.Background()

	_, err := svc.Suggest(ctx, dto.VehicleFilter{Q: "KL"})
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	for i, plate := range []string{"kl07 ab 1", "KL07AB2", "TN01X9", "KL07AB3", "KL07AB4", "KL07AB5", "KL07AB6"} {
		now = now.Add(time.Duration(i) * time.Minute)
		_, err := svc.Create(ctx, dto.CreateVehicleRequest{OwnerID: 1, VehicleNumber: plate})
		require.NoError(t, err)
	}

	now = now.Add(time.Hour)
	again, err := svc.Create(ctx, dto.CreateVehicleRequest{OwnerID: 1, VehicleNumber: "KL07AB1"})
	require.NoError(t, err)
	assert.Len(t, repo.items, 7)

	got, err := svc.Suggest(ctx, dto.VehicleFilter{OwnerID: 1, Q: "kl07"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "KL07AB1", got[0].VehicleNumber)
	assert.Equal(t, "KL07AB6", got[1].VehicleNumber)

	require.NoError(t, svc.Delete(ctx, again.VehicleID))
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(svc.Delete(ctx, again.VehicleID)))

	none, err := svc.Suggest(ctx, dto.VehicleFilter{OwnerID: 2})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVehicleService_Create(t *testing.T) {
	repo := &stubVehicleRepo{}
	owners := newStubOwnerRepo(model.Owner{ID: 1, Name: "AARON", IsActive: true})
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewVehicleService(repo, owners, func() time.Time { return now })
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateVehicleRequest{OwnerID: 404, VehicleNumber: "KL07AB1"})
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	assert.Empty(t, repo.items)

	first, err := svc.Create(ctx, dto.CreateVehicleRequest{OwnerID: 1, VehicleNumber: "KL07AB1"})
	require.NoError(t, err)
	assert.True(t, now.Equal(first.LastUsedAt))

	// A client with a slow clock re-adds the plate; the stored time wins.
	later := now
	now = now.Add(-time.Hour)
	again, err := svc.Create(ctx, dto.CreateVehicleRequest{OwnerID: 1, VehicleNumber: "kl07 ab1"})
	require.NoError(t, err)
	assert.Equal(t, first.VehicleID, again.VehicleID)
	assert.True(t, later.Equal(again.LastUsedAt), again.LastUsedAt)
}

func TestNormalizeVehicle(t *testing.T) {
	cases := map[string]string{
		"kl 07 ab 1234":  "KL07AB1234",
		"KL07--AB---12":  "KL07-AB-12",
		"\tkl07-ab\n":    "KL07-AB",
		"":               "",
		"  ":             "",
		"tn-01 - x - 99": "TN-01-X-99",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeVehicle(in), in)
	}
}
