package service

import (
	"sort"
	"strings"
	"time"

	"raeya/familyboard/internal/model"
)

// feedCap limits how many messages the board shows after filtering.
const feedCap = 30

// AuthorAll is the filter value that keeps every message.
const AuthorAll = "All"

// FeedMonth is one month bucket of the projected feed.
type FeedMonth struct {
	Month    string          `json:"month"`
	Messages []model.Message `json:"messages"`
}

// FeedYear is one year bucket, months in descending calendar order.
type FeedYear struct {
	Year   int         `json:"year"`
	Months []FeedMonth `json:"months"`
}

// ProjectFeed filters the collection by author, keeps the 30 most recent
// messages, and groups them by calendar year and month for display. Pure and
// deterministic: years descend numerically, months descend in calendar order,
// messages within a month stay most-recent-first with ties in their original
// relative order.
func ProjectFeed(messages []model.Message, author string) []FeedYear {
	var filtered []model.Message
	if author == AuthorAll {
		filtered = append(filtered, messages...)
	} else {
		for _, msg := range messages {
			if strings.TrimSpace(msg.Name) == author {
				filtered = append(filtered, msg)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	if len(filtered) > feedCap {
		filtered = filtered[:feedCap]
	}

	type bucketKey struct {
		year  int
		month time.Month
	}

	buckets := make(map[bucketKey][]model.Message)
	for _, msg := range filtered {
		key := bucketKey{year: msg.Date.Year(), month: msg.Date.Month()}
		buckets[key] = append(buckets[key], msg)
	}

	yearMonths := make(map[int][]time.Month)
	for key := range buckets {
		yearMonths[key.year] = append(yearMonths[key.year], key.month)
	}

	years := make([]int, 0, len(yearMonths))
	for year := range yearMonths {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	feed := make([]FeedYear, 0, len(years))
	for _, year := range years {
		months := yearMonths[year]
		sort.Slice(months, func(i, j int) bool { return months[i] > months[j] })

		group := FeedYear{Year: year, Months: make([]FeedMonth, 0, len(months))}
		for _, month := range months {
			group.Months = append(group.Months, FeedMonth{
				Month:    month.String(),
				Messages: buckets[bucketKey{year: year, month: month}],
			})
		}
		feed = append(feed, group)
	}

	return feed
}
