package services

import (
	"strings"
	"time"

	"travel-gateway/models"
	"travel-gateway/repositories"
)

// travelRequirements describe what a tour package or destination needs
// before it can go live.
type travelRequirements struct {
	coverMedia   int
	priceOptions int
	departure    *time.Time
	ret          *time.Time
}

type travelMessages struct {
	coverMedia   string
	priceOptions string
	dates        string
}

func (r travelRequirements) check(msgs travelMessages) error {
	if r.coverMedia == 0 {
		return models.BadRequest(msgs.coverMedia)
	}
	if r.priceOptions == 0 {
		return models.BadRequest(msgs.priceOptions)
	}
	if r.departure == nil || r.ret == nil {
		return models.BadRequest(msgs.dates)
	}
	return nil
}

func newClientOptions(inputs []models.PriceOptionInput) ([]models.ClientPriceOption, error) {
	options := make([]models.ClientPriceOption, 0, len(inputs))
	seen := map[string]bool{}
	for _, in := range inputs {
		name := strings.TrimSpace(in.CategoryName)
		key := strings.ToLower(name)
		if seen[key] {
			return nil, models.Conflictf("Client category name %q already exists.", name)
		}
		seen[key] = true
		options = append(options, models.ClientPriceOption{CategoryName: name, Price: in.Price})
	}
	return options, nil
}

// planClientOptions turns an upsert list and a delete list into the changes
// to apply to existing. Upserts naming an existing option update it; the
// rest are created with assignOwner applied. An id present in both lists is
// deleted. It also returns how many options will exist afterwards.
func planClientOptions(
	existing []models.ClientPriceOption,
	upserts []models.UpsertPriceOptionInput,
	deleteIDs []string,
	assignOwner func(*models.ClientPriceOption),
) (repositories.OptionChanges[models.ClientPriceOption], int, error) {
	var changes repositories.OptionChanges[models.ClientPriceOption]

	names := make(map[string]string, len(existing))
	for _, opt := range existing {
		names[opt.ID] = opt.CategoryName
	}
	deleted := map[string]bool{}
	for _, id := range deleteIDs {
		if _, ok := names[id]; ok && !deleted[id] {
			deleted[id] = true
			changes.Delete = append(changes.Delete, id)
		}
	}

	for _, in := range upserts {
		name := strings.TrimSpace(in.CategoryName)
		if in.ID != nil {
			if idx := indexOfOption(existing, *in.ID); idx >= 0 {
				if deleted[*in.ID] {
					continue
				}
				current := existing[idx]
				current.CategoryName = name
				current.Price = in.Price
				changes.Update = append(changes.Update, current)
				names[current.ID] = name
				continue
			}
		}
		opt := models.ClientPriceOption{CategoryName: name, Price: in.Price}
		assignOwner(&opt)
		changes.Create = append(changes.Create, opt)
	}

	final := make([]string, 0, len(names)+len(changes.Create))
	for _, opt := range existing {
		if !deleted[opt.ID] {
			final = append(final, names[opt.ID])
		}
	}
	for _, opt := range changes.Create {
		final = append(final, opt.CategoryName)
	}

	seen := map[string]bool{}
	for _, name := range final {
		key := strings.ToLower(name)
		if seen[key] {
			return changes, 0, models.Conflictf("Client category name %q already exists.", name)
		}
		seen[key] = true
	}
	return changes, len(final), nil
}

func indexOfOption(options []models.ClientPriceOption, id string) int {
	for i := range options {
		if options[i].ID == id {
			return i
		}
	}
	return -1
}

// travelFields points at the editable columns tour packages and
// destinations share.
type travelFields struct {
	title         *string
	location      *string
	minimumPrice  **float64
	coverMedia    *[]string
	departureDate **time.Time
	returnDate    **time.Time
	duration      *int
	description   *string
	activities    *string
}

// applyTravelEdit copies the non-nil fields of in onto f and recomputes the
// duration when both dates are known.
func applyTravelEdit(f *travelFields, in models.EditTravelInput, deps ContentDeps) error {
	if in.TourTitle != nil {
		*f.title = strings.TrimSpace(*in.TourTitle)
	}
	if in.Location != nil {
		*f.location = strings.TrimSpace(*in.Location)
	}
	if in.MinimumPrice != nil {
		*f.minimumPrice = in.MinimumPrice
	}
	if in.CoverMedia != nil {
		*f.coverMedia = in.CoverMedia
	}
	if in.DepartureDate != nil {
		*f.departureDate = in.DepartureDate
	}
	if in.ReturnDate != nil {
		*f.returnDate = in.ReturnDate
	}

	if *f.departureDate != nil && *f.returnDate != nil {
		duration, err := tripDuration(*f.departureDate, *f.returnDate)
		if err != nil {
			return err
		}
		*f.duration = duration
	} else if in.Duration != nil {
		*f.duration = *in.Duration
	}

	if in.Description != nil {
		packed, err := deps.packText(*in.Description)
		if err != nil {
			return err
		}
		*f.description = packed
	}
	if in.Activities != nil {
		packed, err := deps.packText(*in.Activities)
		if err != nil {
			return err
		}
		*f.activities = packed
	}
	return nil
}
