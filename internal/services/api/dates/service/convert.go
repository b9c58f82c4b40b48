package service

import (
	"datesieve/internal/core/extracted"
	"datesieve/internal/services/api/dates/domain"
)

// ToDTO maps an extracted date onto its wire form
func ToDTO(d extracted.Date) domain.Date {
	out := domain.Date{
		Text:       d.Text(),
		Format:     d.Format(),
		Normalized: d.NormalizedString(),
		Exactness:  d.Exactness().String(),
		Zone:       d.Zone(),
		Year:       field(d, extracted.FieldYear),
		Month:      field(d, extracted.FieldMonth),
		Day:        field(d, extracted.FieldDay),
		Hour:       field(d, extracted.FieldHour),
		Minute:     field(d, extracted.FieldMinute),
		Second:     field(d, extracted.FieldSecond),
	}
	if d.Has(extracted.FieldYear) {
		ms := d.Time().UnixMilli()
		out.UnixMs = &ms
	}
	return out
}

func toDTOs(in []extracted.Date) []domain.Date {
	out := make([]domain.Date, 0, len(in))
	for _, d := range in {
		out = append(out, ToDTO(d))
	}
	return out
}

func field(d extracted.Date, f extracted.Field) *int {
	if !d.Has(f) {
		return nil
	}
	v := d.Get(f)
	return &v
}
