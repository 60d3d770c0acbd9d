package tui

import "github.com/MKhiriev/go-echo-feed/internal/service"

// refreshMsg re-reads the engine view on a fixed cadence.
type refreshMsg struct{}

type noticeMsg service.Notice

// tickDoneMsg ends a manual refresh.
type tickDoneMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
