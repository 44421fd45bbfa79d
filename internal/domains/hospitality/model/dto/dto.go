package dto

import (
	"majlis/internal/domains/hospitality/model"
)

type OptionResponse struct {
	Kind   string `json:"kind"`
	Option string `json:"option"`
	Notes  string `json:"notes"`
}

func (r *OptionResponse) FromModel(opt model.Option) {
	r.Kind = opt.Kind
	r.Option = opt.Option
	r.Notes = opt.Notes
}

type GetOptionsResponse struct {
	Options []OptionResponse `json:"options"`
	Total   int              `json:"total"`
}

func (r *GetOptionsResponse) FromModels(opts []model.Option) {
	r.Total = len(opts)
	r.Options = make([]OptionResponse, len(opts))

	for i, opt := range opts {
		r.Options[i].FromModel(opt)
	}
}

// SuggestionResponse carries the default hospitality package for a meeting
// kind. Option is empty when no package matches.
type SuggestionResponse struct {
	Kind   string `json:"kind"`
	Option string `json:"option"`
}
