package models

import "time"

type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

type MarkPrice struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}
