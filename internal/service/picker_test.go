package service

import (
	"career_path_backend/internal/catalog"
	"career_path_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualPickerEvictsOldest(t *testing.T) {
	var p ManualPicker
	p.Toggle(catalog.SoftwareEngineer)
	p.Toggle(catalog.DataScientist)
	p.Toggle(catalog.Nurse)

	assert.Equal(t, []catalog.CareerPath{catalog.DataScientist, catalog.Nurse}, p.Picks)

	p.Toggle(catalog.Doctor)
	assert.Equal(t, []catalog.CareerPath{catalog.Nurse, catalog.Doctor}, p.Picks)
}

func TestManualPickerToggleOff(t *testing.T) {
	var p ManualPicker
	p.Toggle(catalog.SoftwareEngineer)
	p.Toggle(catalog.DataScientist)
	p.Toggle(catalog.SoftwareEngineer)
	assert.Equal(t, []catalog.CareerPath{catalog.DataScientist}, p.Picks)

	p.Toggle(catalog.Animator)
	assert.Equal(t, []catalog.CareerPath{catalog.DataScientist, catalog.Animator}, p.Picks)
}

func TestScriptedPickerRejectsThird(t *testing.T) {
	var p ScriptedPicker
	require.NoError(t, p.Toggle(catalog.SoftwareEngineer))
	require.NoError(t, p.Toggle(catalog.DataScientist))

	err := p.Toggle(catalog.CybersecurityAnalyst)
	assert.ErrorIs(t, err, util.ErrTooManyCareers)
	assert.Equal(t, []catalog.CareerPath{catalog.SoftwareEngineer, catalog.DataScientist}, p.Picks)

	require.NoError(t, p.Toggle(catalog.SoftwareEngineer))
	require.NoError(t, p.Toggle(catalog.CybersecurityAnalyst))
	assert.Equal(t, []catalog.CareerPath{catalog.DataScientist, catalog.CybersecurityAnalyst}, p.Picks)
}
