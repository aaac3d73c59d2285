package services

import (
	"time"

	"travel-gateway/models"
)

// PrerequisiteCheck reports why an item may not go live. It is consulted
// only when a transition ends in PUBLISHED or HIGHLIGHTED.
type PrerequisiteCheck func() error

// WorkflowMessages are the user facing strings of one entity's workflow.
type WorkflowMessages struct {
	Published     string
	Highlighted   string
	Unhighlighted string
	Archived      string
	Unarchived    string
	Draft         string

	InvalidStatus         string
	ArchiveDraft          string
	HighlightArchived     string
	HighlightNotPublished string
	AlreadyPublished      string
}

// WorkflowRules parameterise the status engine for one entity.
type WorkflowRules struct {
	Entity string

	// SingleHighlight clears every other highlighted row of the entity
	// when an item becomes highlighted.
	SingleHighlight bool
	// ToggleHighlight turns highlighting an already highlighted item into
	// un-highlighting it back to PUBLISHED.
	ToggleHighlight bool
	// ToggleArchive turns archiving an archived item into restoring it to
	// PUBLISHED.
	ToggleArchive    bool
	ArchiveFromDraft bool
	RejectRepublish  bool
	// ResetDateOnPublish stamps datePublished with now on every publish.
	// Otherwise an existing publish date is kept.
	ResetDateOnPublish bool

	Messages WorkflowMessages
}

// Transition is the outcome of an accepted status change.
type Transition struct {
	From            models.ContentStatus
	To              models.ContentStatus
	Message         string
	ClearHighlights bool
}

// Workflow is the content status engine shared by every publishable entity.
type Workflow struct {
	rules WorkflowRules
}

func NewWorkflow(rules WorkflowRules) Workflow {
	return Workflow{rules: rules}
}

func (w Workflow) Rules() WorkflowRules {
	return w.rules
}

// Apply moves state to target, or returns a bad request error and leaves
// state untouched.
func (w Workflow) Apply(state *models.ContentState, target models.ContentStatus, check PrerequisiteCheck, now time.Time) (Transition, error) {
	msgs := w.rules.Messages
	if !target.Valid() {
		return Transition{}, models.BadRequest(msgs.InvalidStatus)
	}

	current := state.Status
	t := Transition{From: current, To: target}
	datePublished := state.DatePublished

	switch target {
	case models.StatusDraft:
		t.Message = msgs.Draft
		datePublished = nil

	case models.StatusPublished:
		if w.rules.RejectRepublish && current == models.StatusPublished {
			return Transition{}, models.BadRequest(msgs.AlreadyPublished)
		}
		t.Message = msgs.Published
		if w.rules.ResetDateOnPublish || datePublished == nil {
			datePublished = &now
		}

	case models.StatusArchived:
		if current == models.StatusDraft && !w.rules.ArchiveFromDraft {
			return Transition{}, models.BadRequest(msgs.ArchiveDraft)
		}
		if current == models.StatusArchived && w.rules.ToggleArchive {
			t.To = models.StatusPublished
			t.Message = msgs.Unarchived
			if datePublished == nil {
				datePublished = &now
			}
			break
		}
		t.Message = msgs.Archived

	case models.StatusHighlighted:
		if current == models.StatusArchived {
			return Transition{}, models.BadRequest(firstNonEmpty(msgs.HighlightArchived, msgs.HighlightNotPublished))
		}
		if current == models.StatusDraft {
			return Transition{}, models.BadRequest(msgs.HighlightNotPublished)
		}
		if current == models.StatusHighlighted && w.rules.ToggleHighlight {
			t.To = models.StatusPublished
			t.Message = msgs.Unhighlighted
			break
		}
		t.Message = msgs.Highlighted
		t.ClearHighlights = w.rules.SingleHighlight
		if datePublished == nil {
			datePublished = &now
		}
	}

	if t.To.Live() && check != nil {
		if err := check(); err != nil {
			return Transition{}, err
		}
	}

	state.Status = t.To
	state.Highlighted = t.To == models.StatusHighlighted
	state.Archived = t.To == models.StatusArchived
	state.DatePublished = datePublished
	return t, nil
}

// Initial validates the status of a newly created item. Only DRAFT and
// PUBLISHED are accepted; nil means DRAFT.
func (w Workflow) Initial(status *models.ContentStatus, check PrerequisiteCheck, now time.Time) (models.ContentState, error) {
	state := models.NewContentState()
	if status == nil || *status == models.StatusDraft {
		return state, nil
	}
	if *status != models.StatusPublished {
		return state, models.BadRequestf("New items can only be created as %s or %s", models.StatusDraft, models.StatusPublished)
	}
	if check != nil {
		if err := check(); err != nil {
			return state, err
		}
	}
	state.Status = models.StatusPublished
	state.DatePublished = &now
	return state, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var blogWorkflow = NewWorkflow(WorkflowRules{
	Entity:             "blog",
	SingleHighlight:    true,
	ResetDateOnPublish: true,
	Messages: WorkflowMessages{
		Published:             "Blog published successfully.",
		Highlighted:           "Blog highlighted successfully.",
		Archived:              "Blog archived successfully.",
		Draft:                 "Blog saved to draft successfully.",
		InvalidStatus:         "Invalid status provided",
		ArchiveDraft:          "Cannot archive a draft blog",
		HighlightArchived:     "Cannot highlight an archived blog",
		HighlightNotPublished: "Only published blogs can be highlighted",
	},
})

var tourPackageWorkflow = NewWorkflow(WorkflowRules{
	Entity:             "tour_package",
	ToggleHighlight:    true,
	ToggleArchive:      true,
	RejectRepublish:    true,
	ResetDateOnPublish: true,
	Messages: WorkflowMessages{
		Published:             "Tour package published successfully",
		Highlighted:           "Tour package highlighted successfully",
		Unhighlighted:         "Tour package unhighlighted successfully",
		Archived:              "Tour package archived successfully",
		Unarchived:            "Tour package unarchived successfully",
		Draft:                 "Tour package moved to draft successfully",
		InvalidStatus:         "Invalid status provided",
		ArchiveDraft:          "Cannot archive a draft tour package",
		HighlightNotPublished: "Only published tours can be highlighted",
		AlreadyPublished:      "Tour package is already published",
	},
})

var destinationWorkflow = NewWorkflow(WorkflowRules{
	Entity:           "destination_travel",
	ToggleHighlight:  true,
	ArchiveFromDraft: true,
	Messages: WorkflowMessages{
		Published:             "Destination travel published successfully",
		Highlighted:           "Destination travel highlighted successfully",
		Unhighlighted:         "Destination travel unhighlighted successfully",
		Archived:              "Destination travel archived successfully",
		Draft:                 "Destination travel moved to draft successfully",
		InvalidStatus:         "Invalid status provided",
		HighlightNotPublished: "only published destination can be highlighted",
	},
})

var visaChecklistWorkflow = NewWorkflow(WorkflowRules{
	Entity:          "visa_checklist",
	SingleHighlight: true,
	ToggleHighlight: true,
	Messages: WorkflowMessages{
		Published:             "Visa checklist published successfully",
		Highlighted:           "Visa checklist highlighted successfully",
		Unhighlighted:         "Visa checklist unhighlighted successfully",
		Archived:              "Visa checklist archived successfully",
		Draft:                 "Visa checklist saved to draft successfully",
		InvalidStatus:         "Unsupported status transition",
		ArchiveDraft:          "Cannot archive a draft visa checklist.",
		HighlightNotPublished: "Only published visa checklists can be highlighted",
	},
})
