// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Issue is a binary-opposed label pair. A belief value of -1 selects the
// first label, +1 the second.
type Issue [2]string

// Label returns the label that corresponds to the given pole.
func (i Issue) Label(pole int) string {
	if pole < 0 {
		return i[0]
	}
	return i[1]
}

// Team is the optional [name, colour] badge the provider may attach to a
// participant.
type Team [2]string

// Name returns the team name.
func (t Team) Name() string { return t[0] }

// Colour returns the team colour as sent by the provider (CSS colour name
// or hex value).
func (t Team) Colour() string { return t[1] }

// Metric column names observed across provider variants.
const (
	MetricFollowers = "Followers"
	MetricViews     = "Views"
	MetricLikes     = "Likes"
)

// FeedMessage is one peer message shown in a feed slot.
type FeedMessage struct {
	// User is the display name of the message author.
	User string

	// Post is the author's latest belief-state message, one ±1 value per
	// issue.
	Post []int

	// Metric is the author's score in the variant's metric column.
	Metric int

	// MetricName is the JSON key the metric was read from.
	MetricName string
}

type feedMessageJSON struct {
	User      string `json:"User"`
	Post      []int  `json:"Latest Post"`
	Followers *int   `json:"Followers,omitempty"`
	Views     *int   `json:"Views,omitempty"`
	Likes     *int   `json:"Likes,omitempty"`
}

// UnmarshalJSON accepts any of the metric column names used by provider
// variants.
func (m *FeedMessage) UnmarshalJSON(b []byte) error {
	var raw feedMessageJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	m.User = raw.User
	m.Post = raw.Post
	m.Metric, m.MetricName = 0, ""

	switch {
	case raw.Followers != nil:
		m.Metric, m.MetricName = *raw.Followers, MetricFollowers
	case raw.Views != nil:
		m.Metric, m.MetricName = *raw.Views, MetricViews
	case raw.Likes != nil:
		m.Metric, m.MetricName = *raw.Likes, MetricLikes
	}

	return nil
}

// MarshalJSON writes the message back using its original metric column.
func (m FeedMessage) MarshalJSON() ([]byte, error) {
	raw := feedMessageJSON{User: m.User, Post: m.Post}
	metric := m.Metric

	switch m.MetricName {
	case MetricViews:
		raw.Views = &metric
	case MetricLikes:
		raw.Likes = &metric
	default:
		raw.Followers = &metric
	}

	return json.Marshal(raw)
}

// PostLabels renders the post as issue labels separated by spaces.
func (m FeedMessage) PostLabels(issues []Issue) string {
	labels := make([]string, 0, len(m.Post))
	for i, pole := range m.Post {
		if i >= len(issues) {
			break
		}
		labels = append(labels, issues[i].Label(pole))
	}
	return strings.Join(labels, " ")
}

// RoundSnapshot is the participant's view of the current round as returned
// by GET /state/{apiKey}. Every field may be absent in a partial snapshot.
type RoundSnapshot struct {
	Error *string `json:"error"`

	Step        int     `json:"step"`
	StepEndTime float64 `json:"stepEndTime"`

	Issues    []Issue       `json:"issues"`
	OutDegree int           `json:"outDegree"`
	Messages  []FeedMessage `json:"messages"`

	Likes      int `json:"likes"`
	LikeChange int `json:"likeChange"`
	Followers  int `json:"followers"`
	ReadyCount int `json:"readyCount"`
	Size       int `json:"size"`

	Team *Team `json:"team,omitempty"`
}

// ErrorCode returns the provider error code or an empty string.
func (s RoundSnapshot) ErrorCode() string {
	if s.Error == nil {
		return ""
	}
	return *s.Error
}

// EndTime converts StepEndTime (fractional epoch seconds) to time.Time.
// A non-positive value means the provider has not started the timer.
func (s RoundSnapshot) EndTime() time.Time {
	if s.StepEndTime <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(s.StepEndTime)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// HasSchema reports whether the snapshot carries issues and a feed size.
func (s RoundSnapshot) HasSchema() bool {
	return len(s.Issues) > 0 && s.OutDegree > 0
}
