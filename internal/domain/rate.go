package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RateRecord is one currency pair as published by the provider feed.
type RateRecord struct {
	Code       string `json:"code"`
	CodeIn     string `json:"codein"`
	Name       string `json:"name"`
	High       string `json:"high,omitempty"`
	Low        string `json:"low,omitempty"`
	VarBid     string `json:"varBid,omitempty"`
	PctChange  string `json:"pctChange,omitempty"`
	Bid        string `json:"bid"`
	Ask        string `json:"ask,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
	CreateDate string `json:"create_date,omitempty"`
}

// BidValue parses the string-encoded bid. Only plain decimal notation and the
// spellings Infinity, +Infinity and -Infinity are numbers; "NaN", "inf" and hex
// floats are rejected.
func (r RateRecord) BidValue() (float64, error) {
	s := strings.TrimSpace(r.Bid)
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	if strings.TrimLeft(s, "0123456789+-.eE") != "" {
		return 0, fmt.Errorf("%w: %s bid %q", ErrInvalidBid, r.Code, r.Bid)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s bid %q", ErrInvalidBid, r.Code, r.Bid)
	}
	return v, nil
}

func (r RateRecord) Pair() string { return r.Code + "/" + r.CodeIn }
