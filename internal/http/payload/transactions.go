package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var txIDRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type ReserveRequest struct {
	Amount string `json:"amount"`
}

func (r ReserveRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Amount, validation.Required),
	)
}

type ConfigRequest struct {
	TriggerBalance string `json:"triggerBalance"`
	ReserveBalance string `json:"reserveBalance"`
}

func (c ConfigRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.TriggerBalance, validation.Required),
		validation.Field(&c.ReserveBalance, validation.Required),
	)
}

type TrackRequest struct {
	TxID    string `json:"txId"`
	Comment string `json:"comment"`
}

func (t TrackRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TxID, validation.Required, validation.Match(txIDRegex)),
		validation.Field(&t.Comment, validation.Length(0, 256)),
	)
}
