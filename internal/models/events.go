package models

import "time"

type Alert struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	Severity     string    `json:"severity"`
	Message      string    `json:"message"`
	Source       string    `json:"source"`
	Acknowledged bool      `json:"acknowledged"`
}

type ErrorEvent struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Level    string    `json:"level"`
	Message  string    `json:"message"`
	Source   string    `json:"source"`
	Resolved bool      `json:"resolved"`
}

type LogEvent struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Source  string    `json:"source"`
}
