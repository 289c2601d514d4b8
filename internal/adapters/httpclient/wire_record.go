package httpclient

import (
	"bytes"
	"encoding/json"
	"walletfx/internal/domain"
)

// looseString accepts any JSON value. Strings are unquoted, null is empty and
// everything else keeps its literal text, so a numeric bid like 3.8 reads as "3.8".
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = looseString(str)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	*s = looseString(b)
	return nil
}

type wireRecord struct {
	Code       looseString `json:"code"`
	CodeIn     looseString `json:"codein"`
	Name       looseString `json:"name"`
	High       looseString `json:"high"`
	Low        looseString `json:"low"`
	VarBid     looseString `json:"varBid"`
	PctChange  looseString `json:"pctChange"`
	Bid        looseString `json:"bid"`
	Ask        looseString `json:"ask"`
	Timestamp  looseString `json:"timestamp"`
	CreateDate looseString `json:"create_date"`
}

func (w wireRecord) toDomain() domain.RateRecord {
	return domain.RateRecord{
		Code:       string(w.Code),
		CodeIn:     string(w.CodeIn),
		Name:       string(w.Name),
		High:       string(w.High),
		Low:        string(w.Low),
		VarBid:     string(w.VarBid),
		PctChange:  string(w.PctChange),
		Bid:        string(w.Bid),
		Ask:        string(w.Ask),
		Timestamp:  string(w.Timestamp),
		CreateDate: string(w.CreateDate),
	}
}
