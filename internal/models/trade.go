// Package models defines the JSON payload shapes the mock transport
// serves to the dashboard. Numbers are float64: these are display
// payloads regenerated every session, not accounting records.
package models

import "time"

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type TradeRecord struct {
	ID           string     `json:"id"`
	Symbol       string     `json:"symbol"`
	Side         string     `json:"side"`
	EntryPrice   float64    `json:"entry_price"`
	ExitPrice    *float64   `json:"exit_price,omitempty"`
	CurrentPrice float64    `json:"current_price"`
	PnL          float64    `json:"pnl"`
	PnLPercent   float64    `json:"pnl_percent"`
	RMultiple    float64    `json:"r_multiple"`
	EntryTime    time.Time  `json:"entry_time"`
	ExitTime     *time.Time `json:"exit_time,omitempty"`
	Status       string     `json:"status"`
	Size         float64    `json:"size"`
	Quantity     float64    `json:"quantity"`
	Leverage     float64    `json:"leverage"`
	StopLoss     float64    `json:"stop_loss"`
	TakeProfit   float64    `json:"take_profit"`
	Fees         float64    `json:"fees"`
	Regime       string     `json:"regime"`
	Confidence   float64    `json:"confidence"`
	SetupType    string     `json:"setup_type"`
	Rationale    string     `json:"rationale"`
	Score        float64    `json:"score"`
}

// Position is the read-only projection of an open TradeRecord.
type Position struct {
	Symbol           string    `json:"symbol"`
	Side             string    `json:"side"`
	EntryPrice       float64   `json:"entry_price"`
	CurrentPrice     float64   `json:"current_price"`
	Quantity         float64   `json:"quantity"`
	Leverage         float64   `json:"leverage"`
	Notional         float64   `json:"notional"`
	Margin           float64   `json:"margin"`
	LiquidationPrice float64   `json:"liquidation_price"`
	StopLoss         float64   `json:"stop_loss"`
	TakeProfit       float64   `json:"take_profit"`
	UnrealizedPnL    float64   `json:"unrealized_pnl"`
	PnLPercent       float64   `json:"pnl_percent"`
	EntryTime        time.Time `json:"entry_time"`
	Regime           string    `json:"regime"`
	SetupType        string    `json:"setup_type"`
}

type CapitalEvent struct {
	ID     string    `json:"id"`
	Kind   string    `json:"kind"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
	Note   string    `json:"note,omitempty"`
}
