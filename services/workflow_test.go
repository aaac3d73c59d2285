package services

import (
	"errors"
	"testing"
	"time"

	"travel-gateway/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func stateOf(status models.ContentStatus, published *time.Time) models.ContentState {
	return models.ContentState{
		Status:        status,
		Highlighted:   status == models.StatusHighlighted,
		Archived:      status == models.StatusArchived,
		DatePublished: published,
	}
}

func passes() error { return nil }

func assertDerivedFlags(t *testing.T, s models.ContentState) {
	t.Helper()
	assert.Equal(t, s.Status == models.StatusHighlighted, s.Highlighted, "highlighted mirrors status")
	assert.Equal(t, s.Status == models.StatusArchived, s.Archived, "archived mirrors status")
}

func TestWorkflow_DerivedFlagsAfterEveryTransition(t *testing.T) {
	earlier := fixedNow.Add(-48 * time.Hour)
	workflows := []Workflow{blogWorkflow, tourPackageWorkflow, destinationWorkflow, visaChecklistWorkflow}
	statuses := []models.ContentStatus{models.StatusDraft, models.StatusPublished, models.StatusHighlighted, models.StatusArchived}

	for _, w := range workflows {
		for _, from := range statuses {
			for _, to := range statuses {
				state := stateOf(from, &earlier)
				if from == models.StatusDraft {
					state.DatePublished = nil
				}
				before := state

				_, err := w.Apply(&state, to, passes, fixedNow)
				if err != nil {
					assert.Equal(t, before, state, "%s %s->%s must not mutate on rejection", w.Rules().Entity, from, to)
					continue
				}
				assertDerivedFlags(t, state)
			}
		}
	}
}

func TestWorkflow_DraftClearsDatePublished(t *testing.T) {
	earlier := fixedNow.Add(-time.Hour)
	for _, w := range []Workflow{blogWorkflow, tourPackageWorkflow, destinationWorkflow, visaChecklistWorkflow} {
		state := stateOf(models.StatusPublished, &earlier)
		tr, err := w.Apply(&state, models.StatusDraft, passes, fixedNow)
		require.NoError(t, err, w.Rules().Entity)
		assert.Equal(t, models.StatusDraft, tr.To)
		assert.Nil(t, state.DatePublished, w.Rules().Entity)
	}
}

func TestWorkflow_InvalidTarget(t *testing.T) {
	state := stateOf(models.StatusDraft, nil)

	_, err := blogWorkflow.Apply(&state, "BOGUS", passes, fixedNow)
	assert.EqualError(t, err, "Invalid status provided")

	_, err = visaChecklistWorkflow.Apply(&state, "BOGUS", passes, fixedNow)
	assert.EqualError(t, err, "Unsupported status transition")
}

func TestWorkflow_PrerequisitesGuardLiveStatuses(t *testing.T) {
	missingTag := errors.New("unused")
	check := func() error { return models.BadRequest("Please assign a tag before publishing") }

	state := stateOf(models.StatusDraft, nil)
	_, err := blogWorkflow.Apply(&state, models.StatusPublished, check, fixedNow)
	assert.EqualError(t, err, "Please assign a tag before publishing")
	var bad models.ErrorBadRequest
	assert.ErrorAs(t, err, &bad)
	assert.Equal(t, models.StatusDraft, state.Status)

	// Leaving the live states never consults the check.
	published := stateOf(models.StatusPublished, &fixedNow)
	_, err = blogWorkflow.Apply(&published, models.StatusArchived, func() error { return missingTag }, fixedNow)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusArchived, published.Status)
}

func TestBlogWorkflow(t *testing.T) {
	earlier := fixedNow.Add(-72 * time.Hour)

	t.Run("publish resets the publish date", func(t *testing.T) {
		state := stateOf(models.StatusArchived, &earlier)
		tr, err := blogWorkflow.Apply(&state, models.StatusPublished, passes, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, "Blog published successfully.", tr.Message)
		assert.Equal(t, fixedNow, *state.DatePublished)
	})

	t.Run("highlight keeps the publish date and clears others", func(t *testing.T) {
		state := stateOf(models.StatusPublished, &earlier)
		tr, err := blogWorkflow.Apply(&state, models.StatusHighlighted, passes, fixedNow)
		require.NoError(t, err)
		assert.True(t, tr.ClearHighlights)
		assert.Equal(t, earlier, *state.DatePublished)
		assert.True(t, state.Highlighted)
	})

	t.Run("draft cannot be archived", func(t *testing.T) {
		state := stateOf(models.StatusDraft, nil)
		_, err := blogWorkflow.Apply(&state, models.StatusArchived, passes, fixedNow)
		assert.EqualError(t, err, "Cannot archive a draft blog")
	})

	t.Run("draft and archived cannot be highlighted", func(t *testing.T) {
		draft := stateOf(models.StatusDraft, nil)
		_, err := blogWorkflow.Apply(&draft, models.StatusHighlighted, passes, fixedNow)
		assert.EqualError(t, err, "Only published blogs can be highlighted")

		archived := stateOf(models.StatusArchived, &earlier)
		_, err = blogWorkflow.Apply(&archived, models.StatusHighlighted, passes, fixedNow)
		assert.EqualError(t, err, "Cannot highlight an archived blog")
	})
}

func TestTourPackageWorkflow(t *testing.T) {
	earlier := fixedNow.Add(-24 * time.Hour)

	t.Run("highlight toggles back to published", func(t *testing.T) {
		state := stateOf(models.StatusHighlighted, &earlier)
		tr, err := tourPackageWorkflow.Apply(&state, models.StatusHighlighted, passes, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, tr.To)
		assert.Equal(t, "Tour package unhighlighted successfully", tr.Message)
		assert.False(t, state.Highlighted)
		assert.False(t, tr.ClearHighlights)
	})

	t.Run("archive toggles back to published", func(t *testing.T) {
		state := stateOf(models.StatusArchived, &earlier)
		tr, err := tourPackageWorkflow.Apply(&state, models.StatusArchived, passes, fixedNow)
		require.NoError(t, err)
		assert.Equal(t, models.StatusPublished, state.Status)
		assert.Equal(t, "Tour package unarchived successfully", tr.Message)
		assert.False(t, state.Archived)
	})

	t.Run("republishing is rejected", func(t *testing.T) {
		state := stateOf(models.StatusPublished, &earlier)
		_, err := tourPackageWorkflow.Apply(&state, models.StatusPublished, passes, fixedNow)
		assert.EqualError(t, err, "Tour package is already published")
	})

	t.Run("highlighted package can be archived", func(t *testing.T) {
		state := stateOf(models.StatusHighlighted, &earlier)
		_, err := tourPackageWorkflow.Apply(&state, models.StatusArchived, passes, fixedNow)
		require.NoError(t, err)
		assert.True(t, state.Archived)
		assert.False(t, state.Highlighted)
	})
}

func TestDestinationWorkflow(t *testing.T) {
	state := stateOf(models.StatusDraft, nil)
	tr, err := destinationWorkflow.Apply(&state, models.StatusArchived, passes, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Destination travel archived successfully", tr.Message)

	earlier := fixedNow.Add(-time.Hour)
	published := stateOf(models.StatusPublished, &earlier)
	tr, err = destinationWorkflow.Apply(&published, models.StatusHighlighted, passes, fixedNow)
	require.NoError(t, err)
	assert.False(t, tr.ClearHighlights)
	assert.Equal(t, earlier, *published.DatePublished)
}

func TestVisaChecklistWorkflow(t *testing.T) {
	archived := stateOf(models.StatusArchived, &fixedNow)
	_, err := visaChecklistWorkflow.Apply(&archived, models.StatusHighlighted, passes, fixedNow)
	assert.EqualError(t, err, "Only published visa checklists can be highlighted")

	draft := stateOf(models.StatusDraft, nil)
	_, err = visaChecklistWorkflow.Apply(&draft, models.StatusArchived, passes, fixedNow)
	assert.EqualError(t, err, "Cannot archive a draft visa checklist.")

	published := stateOf(models.StatusPublished, &fixedNow)
	tr, err := visaChecklistWorkflow.Apply(&published, models.StatusHighlighted, passes, fixedNow)
	require.NoError(t, err)
	assert.True(t, tr.ClearHighlights)
}

func TestWorkflow_Initial(t *testing.T) {
	state, err := blogWorkflow.Initial(nil, func() error { return errors.New("not consulted") }, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, state.Status)
	assert.Nil(t, state.DatePublished)

	published := models.StatusPublished
	state, err = blogWorkflow.Initial(&published, passes, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, state.Status)
	assert.Equal(t, fixedNow, *state.DatePublished)

	highlighted := models.StatusHighlighted
	_, err = blogWorkflow.Initial(&highlighted, passes, fixedNow)
	var bad models.ErrorBadRequest
	assert.ErrorAs(t, err, &bad)
}
