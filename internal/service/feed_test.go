package service

import (
	"fmt"
	"testing"
	"time"

	"raeya/familyboard/internal/model"
)

func msgOn(id, name, date string) model.Message {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Message{ID: id, Text: "hello", Name: name, Date: day}
}

func flatten(feed []FeedYear) []model.Message {
	var out []model.Message
	for _, year := range feed {
		for _, month := range year.Months {
			out = append(out, month.Messages...)
		}
	}
	return out
}

func TestProjectFeedAllIsIdentity(t *testing.T) {
	messages := []model.Message{
		msgOn("1", "Mom", "2025-03-01"),
		msgOn("2", "Dad", "2025-02-01"),
		msgOn("3", "Mom", "2025-01-01"),
	}

	feed := ProjectFeed(messages, AuthorAll)

	got := flatten(feed)
	if len(got) != len(messages) {
		t.Fatalf("got %d messages, want %d", len(got), len(messages))
	}
}

func TestProjectFeedFiltersByTrimmedName(t *testing.T) {
	messages := []model.Message{
		msgOn("1", "Mom", "2025-03-01"),
		msgOn("2", " Mom ", "2025-02-01"),
		msgOn("3", "Dad", "2025-01-01"),
		msgOn("4", "mom", "2025-01-02"),
	}

	got := flatten(ProjectFeed(messages, "Mom"))

	// Exact match after trimming, case-sensitive: "mom" stays out.
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	for _, msg := range got {
		if msg.ID != "1" && msg.ID != "2" {
			t.Errorf("unexpected message %s in filtered feed", msg.ID)
		}
	}
}

func TestProjectFeedCapsAtThirty(t *testing.T) {
	var messages []model.Message
	for i := 0; i < 40; i++ {
		messages = append(messages, msgOn(fmt.Sprintf("%d", i), "Mom", fmt.Sprintf("2025-01-%02d", i%28+1)))
	}

	got := flatten(ProjectFeed(messages, AuthorAll))
	if len(got) != 30 {
		t.Fatalf("got %d messages, want 30", len(got))
	}
}

func TestProjectFeedCapAppliesAfterFilter(t *testing.T) {
	var messages []model.Message
	for i := 0; i < 35; i++ {
		messages = append(messages, msgOn(fmt.Sprintf("dad-%d", i), "Dad", "2025-06-01"))
	}
	for i := 0; i < 10; i++ {
		messages = append(messages, msgOn(fmt.Sprintf("mom-%d", i), "Mom", "2024-01-01"))
	}

	got := flatten(ProjectFeed(messages, "Mom"))

	// All of Mom's messages survive even though the unfiltered set is over
	// the cap.
	if len(got) != 10 {
		t.Fatalf("got %d messages, want 10", len(got))
	}
}

func TestProjectFeedGroupingIsAPartition(t *testing.T) {
	messages := []model.Message{
		msgOn("1", "Mom", "2025-01-15"),
		msgOn("2", "Dad", "2025-01-02"),
		msgOn("3", "Mom", "2024-12-01"),
		msgOn("4", "Dad", "2024-12-25"),
		msgOn("5", "Mom", "2023-07-04"),
	}

	seen := map[string]int{}
	for _, msg := range flatten(ProjectFeed(messages, AuthorAll)) {
		seen[msg.ID]++
	}

	if len(seen) != len(messages) {
		t.Fatalf("buckets cover %d messages, want %d", len(seen), len(messages))
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("message %s appears %d times, want 1", id, count)
		}
	}
}

func TestProjectFeedOrdering(t *testing.T) {
	messages := []model.Message{
		msgOn("dec", "Mom", "2024-12-01"),
		msgOn("jan15", "Mom", "2025-01-15"),
		msgOn("jan2", "Mom", "2025-01-02"),
	}

	feed := ProjectFeed(messages, AuthorAll)

	if len(feed) != 2 {
		t.Fatalf("got %d year groups, want 2", len(feed))
	}
	if feed[0].Year != 2025 || feed[1].Year != 2024 {
		t.Fatalf("year order = [%d %d], want [2025 2024]", feed[0].Year, feed[1].Year)
	}

	jan := feed[0].Months
	if len(jan) != 1 || jan[0].Month != "January" {
		t.Fatalf("2025 months = %+v, want one January group", jan)
	}
	if jan[0].Messages[0].ID != "jan15" || jan[0].Messages[1].ID != "jan2" {
		t.Errorf("January order = [%s %s], want [jan15 jan2]",
			jan[0].Messages[0].ID, jan[0].Messages[1].ID)
	}

	dec := feed[1].Months
	if len(dec) != 1 || dec[0].Month != "December" {
		t.Fatalf("2024 months = %+v, want one December group", dec)
	}
}

func TestProjectFeedMonthsDescendInCalendarOrder(t *testing.T) {
	// Alphabetically April < December < February; calendar order must win.
	messages := []model.Message{
		msgOn("feb", "Mom", "2025-02-10"),
		msgOn("apr", "Mom", "2025-04-10"),
		msgOn("dec", "Mom", "2025-12-10"),
	}

	feed := ProjectFeed(messages, AuthorAll)

	if len(feed) != 1 {
		t.Fatalf("got %d year groups, want 1", len(feed))
	}

	var order []string
	for _, month := range feed[0].Months {
		order = append(order, month.Month)
	}

	want := []string{"December", "April", "February"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("month order = %v, want %v", order, want)
		}
	}
}

func TestProjectFeedStableOnEqualDates(t *testing.T) {
	messages := []model.Message{
		msgOn("first", "Mom", "2025-05-01"),
		msgOn("second", "Mom", "2025-05-01"),
	}

	got := flatten(ProjectFeed(messages, AuthorAll))

	if got[0].ID != "first" || got[1].ID != "second" {
		t.Errorf("tie order = [%s %s], want original relative order", got[0].ID, got[1].ID)
	}
}
