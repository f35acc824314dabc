package tracker

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/apperr"
	"github.com/starford/lifetrack/internal/models"
)

const (
	// MaxMotivationMedia caps the number of media entries on a goal.
	MaxMotivationMedia = 20
	// MaxMediaEntryBytes caps one encoded entry: a 10 MB upload as a base64 data URI.
	MaxMediaEntryBytes = 14 << 20
)

var errNegative = validation.NewError("validation_negative", "must not be negative")

func nonNegative(value any) error {
	d, _ := value.(*decimal.Decimal)
	if d != nil && d.IsNegative() {
		return errNegative
	}
	return nil
}

func validateMedia(media []string) error {
	return validation.Validate(media,
		validation.Length(0, MaxMotivationMedia),
		validation.Each(validation.Required, validation.Length(1, MaxMediaEntryBytes)),
	)
}

func mediaPatch(value any) error {
	m, _ := value.(*[]string)
	if m == nil {
		return nil
	}
	return validateMedia(*m)
}

func oneOf[T any](values ...T) validation.Rule {
	in := make([]any, len(values))
	for i, v := range values {
		in[i] = v
	}
	return validation.In(in...).Error("must be one of the allowed values")
}

var (
	transactionTypes = oneOf(models.TransactionIncome, models.TransactionExpense)
	goalStatuses     = oneOf(models.GoalStatuses...)
)

func validateNoteInput(in *models.NoteInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
	))
}

func validateNotePatch(p *models.NotePatch) error {
	return apperr.Invalid(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
	))
}

func validateHabitInput(in *models.HabitInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required),
	))
}

func validateHabitPatch(p *models.HabitPatch) error {
	return apperr.Invalid(validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
	))
}

func validateHabitLogInput(in *models.HabitLogInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.HabitID, validation.Required, validation.Min(int64(1))),
		validation.Field(&in.Date, validation.Required, validation.Date(models.DateLayout)),
		validation.Field(&in.Completed, validation.NotNil),
	))
}

func validateTransactionInput(in *models.TransactionInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Amount, validation.NotNil, validation.By(nonNegative)),
		validation.Field(&in.Type, validation.Required, transactionTypes),
		validation.Field(&in.Category, validation.Required),
	))
}

func validateTransactionPatch(p *models.TransactionPatch) error {
	return apperr.Invalid(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.Amount, validation.By(nonNegative)),
		validation.Field(&p.Type, validation.NilOrNotEmpty, transactionTypes),
		validation.Field(&p.Category, validation.NilOrNotEmpty),
	))
}

func validateChecklistInput(in *models.ChecklistInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
	))
}

func validateChecklistPatch(p *models.ChecklistPatch) error {
	return apperr.Invalid(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
	))
}

func validateChecklistItemInput(in *models.ChecklistItemInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.ChecklistID, validation.Required, validation.Min(int64(1))),
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Order, validation.NotNil),
	))
}

func validateChecklistItemPatch(p *models.ChecklistItemPatch) error {
	return apperr.Invalid(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
	))
}

func validateGoalInput(in *models.GoalInput) error {
	return apperr.Invalid(validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.TargetValue, validation.By(nonNegative)),
		validation.Field(&in.CurrentValue, validation.By(nonNegative)),
		validation.Field(&in.Status, goalStatuses),
		validation.Field(&in.MotivationMedia, validation.By(func(any) error { return validateMedia(in.MotivationMedia) })),
	))
}

func validateGoalPatch(p *models.GoalPatch) error {
	return apperr.Invalid(validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.NilOrNotEmpty),
		validation.Field(&p.TargetValue, validation.By(nonNegative)),
		validation.Field(&p.CurrentValue, validation.By(nonNegative)),
		validation.Field(&p.Status, validation.NilOrNotEmpty, goalStatuses),
		validation.Field(&p.MotivationMedia, validation.By(mediaPatch)),
	))
}

func requireQuery(q string) error {
	return apperr.Invalid(validation.Errors{
		"q": validation.Validate(q, validation.Required),
	}.Filter())
}

func validateDay(date string) error {
	return apperr.Invalid(validation.Errors{
		"date": validation.Validate(date, validation.Required, validation.Date(models.DateLayout)),
	}.Filter())
}
