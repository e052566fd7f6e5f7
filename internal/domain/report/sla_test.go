package report

import (
	"testing"
	"time"

	"github.com/linskybing/civictrack/internal/domain/department"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSLADeadline(t *testing.T) {
	want := map[Category]int{
		CategoryPothole:     72,
		CategoryGarbage:     24,
		CategoryStreetlight: 48,
		CategoryDrainage:    48,
		CategoryOther:       96,
	}
	for _, c := range Categories {
		got := SLADeadline(c, base)
		assert.Equal(t, base.Add(time.Duration(want[c])*time.Hour), got, "category %s", c)
	}

	assert.Equal(t, base.Add(96*time.Hour), SLADeadline(Category("sinkhole"), base))
	assert.Equal(t, time.UTC, SLADeadline(CategoryGarbage, base.In(time.FixedZone("X", 3600))).Location())
}

func TestDepartmentName(t *testing.T) {
	assert.Equal(t, "Road Maintenance", DepartmentName(CategoryPothole))
	assert.Equal(t, "Sanitation", DepartmentName(CategoryGarbage))
	assert.Equal(t, "Electrical", DepartmentName(CategoryStreetlight))
	assert.Equal(t, "Water & Sewer", DepartmentName(CategoryDrainage))
	assert.Equal(t, "General Services", DepartmentName(CategoryOther))
	assert.Equal(t, "General Services", DepartmentName(Category("")))
}

func TestSeedsCoverEveryCategory(t *testing.T) {
	require.Len(t, department.Defaults, len(Categories))
	for _, seed := range department.Defaults {
		require.Len(t, seed.Categories, 1)
		assert.Equal(t, seed.Name, DepartmentName(Category(seed.Categories[0])))
	}
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, CategoryDrainage.Valid())
	assert.False(t, Category("Pothole").Valid())
	assert.True(t, StatusInProgress.Valid())
	assert.False(t, Status("in progress").Valid())
	assert.True(t, StatusResolved.Closed())
	assert.False(t, StatusDelayed.Closed())
}

func TestMarkSLA(t *testing.T) {
	r := &Report{Status: StatusAssigned, SLADeadline: base}
	r.MarkSLA(base.Add(-time.Minute))
	assert.False(t, r.SLABreached)
	r.MarkSLA(base.Add(time.Minute))
	assert.True(t, r.SLABreached)

	r.Status = StatusResolved
	r.MarkSLA(base.Add(time.Minute))
	assert.False(t, r.SLABreached)
}
