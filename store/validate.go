package store

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/provsupport/feedcore/config"
	"github.com/provsupport/feedcore/model"
)

// validateDraft enforces the configured tag and location sets. Blank-text
// and moderation-flag failures belong to the snapshot operation itself.
func validateDraft(cfg *config.Config, d model.Draft) error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Tag,
			validation.In(toValues(cfg.Tags)...).Error("unknown tag"),
		),
		validation.Field(&d.Location,
			validation.Required.Error("location is required"),
			validation.In(toValues(cfg.Locations)...).Error("unknown location"),
		),
	)
	if err != nil {
		return &model.ValidationError{Message: err.Error(), Err: err}
	}
	return nil
}

func toValues(list []string) []interface{} {
	values := make([]interface{}, len(list))
	for i, v := range list {
		values[i] = v
	}
	return values
}
