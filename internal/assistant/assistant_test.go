package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mkobaru/yotei/internal/model"
)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

// 2026-02-09 is a Monday.
var noon = time.Date(2026, 2, 9, 12, 0, 0, 0, time.Local)

func TestTodayQueryListsSingleEvent(t *testing.T) {
	events := []model.Event{
		{ID: "seed-1", Title: "ランチミーティング", Timestamp: at(noon, 12, 0)},
	}

	reply := Respond("今日の予定", events, at(noon, 9, 0))
	if !strings.Contains(reply.Text, "1件") {
		t.Fatalf("expected count 1件 in reply, got: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "12:00 ランチミーティング") {
		t.Fatalf("expected time and title in reply, got: %q", reply.Text)
	}
}

func TestTodayCountMatchesEventsOnToday(t *testing.T) {
	tomorrow := noon.AddDate(0, 0, 1)
	events := []model.Event{
		{ID: "e1", Title: "朝会", Timestamp: at(noon, 9, 30)},
		{ID: "e2", Title: "ランチ", Timestamp: at(noon, 12, 0)},
		{ID: "e3", Title: "歯医者", Timestamp: at(tomorrow, 10, 0)},
	}

	for _, phrase := range []string{"今日の予定", "きょうの予定", "今日の予定を教えて"} {
		reply := Respond(phrase, events, noon)
		if !strings.Contains(reply.Text, "2件") {
			t.Fatalf("phrase %q: expected 2件, got: %q", phrase, reply.Text)
		}
	}
}

func TestTodayListsEventsInCollectionOrder(t *testing.T) {
	events := []model.Event{
		{ID: "late", Title: "夕食", Timestamp: at(noon, 19, 0)},
		{ID: "early", Title: "朝会", Timestamp: at(noon, 9, 0)},
	}

	reply := Respond("今日の予定", events, noon)
	dinner := strings.Index(reply.Text, "夕食")
	standup := strings.Index(reply.Text, "朝会")
	if dinner < 0 || standup < 0 || dinner > standup {
		t.Fatalf("expected collection order (夕食 before 朝会), got: %q", reply.Text)
	}
}

func TestTodayAppendsDescription(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Title: "ランチ", Timestamp: at(noon, 12, 0), Description: "駅前の店"},
	}
	reply := Respond("今日の予定", events, noon)
	if !strings.Contains(reply.Text, "12:00 ランチ - 駅前の店") {
		t.Fatalf("expected description suffix, got: %q", reply.Text)
	}
}

func TestTomorrowQueryEmptyUsesFixedMessage(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Title: "今日だけ", Timestamp: at(noon, 15, 0)},
	}

	reply := Respond("明日の予定", events, noon)
	want := "明日の予定はありません。のんびり過ごせそうですね🌙"
	if reply.Text != want {
		t.Fatalf("reply = %q, want %q", reply.Text, want)
	}

	todayReply := Respond("今日の予定", nil, noon)
	if todayReply.Text == reply.Text {
		t.Fatal("today and tomorrow no-event messages must differ")
	}
}

func TestWeekQueryGroupsByDayWithTotal(t *testing.T) {
	// Monday noon; events on Tuesday (2) and Friday (1), same week.
	tue := noon.AddDate(0, 0, 1)
	fri := noon.AddDate(0, 0, 4)
	events := []model.Event{
		{ID: "e1", Title: "歯医者", Timestamp: at(tue, 10, 0)},
		{ID: "e2", Title: "打ち合わせ", Timestamp: at(tue, 14, 0)},
		{ID: "e3", Title: "飲み会", Timestamp: at(fri, 19, 0)},
	}

	reply := Respond("今週", events, noon)
	if !strings.Contains(reply.Text, "合計3件") {
		t.Fatalf("expected total 3, got: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "2/10(火)") || !strings.Contains(reply.Text, "2/13(金)") {
		t.Fatalf("expected two day headers, got: %q", reply.Text)
	}
	headers := 0
	for _, line := range strings.Split(reply.Text, "\n") {
		if !strings.HasPrefix(line, " ") && strings.Contains(line, "(") && strings.Contains(line, "/") {
			headers++
		}
	}
	if headers != 2 {
		t.Fatalf("expected exactly 2 day header lines, got %d in %q", headers, reply.Text)
	}
	if strings.HasSuffix(reply.Text, "\n") || strings.HasSuffix(reply.Text, " ") {
		t.Fatalf("trailing whitespace not trimmed: %q", reply.Text)
	}
}

func TestWeekQueryEmptyWeek(t *testing.T) {
	reply := Respond("今週の予定", nil, noon)
	if reply.Text != "今週の予定はありません。自由な一週間です！✨" {
		t.Fatalf("unexpected free-week reply: %q", reply.Text)
	}
}

func TestAddIntentNeedsScheduleWordPlusSynonym(t *testing.T) {
	reply := Respond("予定を追加したい", nil, noon)
	if reply.Action == nil || reply.Action.Type != ActionAdd {
		t.Fatalf("expected add action, got: %#v", reply.Action)
	}
	for _, input := range []string{"予定を登録", "予定を入れて"} {
		if r := Respond(input, nil, noon); r.Action == nil || r.Action.Type != ActionAdd {
			t.Fatalf("input %q: expected add action", input)
		}
	}

	// The schedule word alone is not enough.
	if r := Respond("追加して", nil, noon); r.Action != nil && r.Action.Type == ActionAdd {
		t.Fatal("add rule must require 予定 in the input")
	}
}

func TestRulePriorityTodayBeatsHelp(t *testing.T) {
	input := "使い方より今日の予定を教えて"
	reply := Respond(input, nil, noon)
	if reply.Text != "今日の予定はありません。ゆっくり休んでくださいね☕" {
		t.Fatalf("expected rule-1 reply, got: %q", reply.Text)
	}
}

func TestGreetingByHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{hour: 7, want: "おはようございます！"},
		{hour: 12, want: "こんにちは！"},
		{hour: 19, want: "こんばんは！"},
	}
	for _, tc := range cases {
		now := at(noon, tc.hour, 0)
		reply := Respond("おはよう", nil, now)
		if !strings.HasPrefix(reply.Text, tc.want) {
			t.Fatalf("hour %d: reply %q does not start with %q", tc.hour, reply.Text, tc.want)
		}
		if !strings.Contains(reply.Text, "お手伝い") {
			t.Fatalf("hour %d: expected offer-to-help line, got %q", tc.hour, reply.Text)
		}
	}
}

func TestGreetingMentionsTodayCount(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Title: "朝会", Timestamp: at(noon, 9, 30)},
		{ID: "e2", Title: "ランチ", Timestamp: at(noon, 12, 0)},
	}
	reply := Respond("こんにちは", events, noon)
	if !strings.Contains(reply.Text, "2件") {
		t.Fatalf("expected today count in greeting, got: %q", reply.Text)
	}
}

func TestThanksAndHelp(t *testing.T) {
	if r := Respond("ありがとう！", nil, noon); !strings.Contains(r.Text, "どういたしまして") {
		t.Fatalf("unexpected thanks reply: %q", r.Text)
	}
	help := Respond("使い方を教えて", nil, noon)
	for _, phrase := range []string{"今日の予定", "明日の予定", "今週の予定", "予定を追加"} {
		if !strings.Contains(help.Text, phrase) {
			t.Fatalf("help reply is missing %q: %q", phrase, help.Text)
		}
	}
}

func TestDefaultEchoesInput(t *testing.T) {
	input := "天気はどう？"
	reply := Respond(input, nil, noon)
	if !strings.Contains(reply.Text, fmt.Sprintf("「%s」", input)) {
		t.Fatalf("default reply does not quote the input: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "使い方") {
		t.Fatalf("default reply does not suggest help: %q", reply.Text)
	}
}
