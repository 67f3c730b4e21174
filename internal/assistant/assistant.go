// Package assistant implements the rule-based chat responder. Rules are
// evaluated strictly in order over the raw input text; the first match
// wins and the final rule matches everything.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkobaru/yotei/internal/dateutil"
	"github.com/mkobaru/yotei/internal/model"
)

type ActionType string

const (
	ActionAdd  ActionType = "add"
	ActionList ActionType = "list"
)

// Action is an advisory hint attached to a reply. Callers may act on it
// or ignore it; the textual reply is the contract.
type Action struct {
	Type  ActionType
	Event *model.Event
}

type Reply struct {
	Text   string
	Action *Action
}

type request struct {
	input  string
	events []model.Event
	now    time.Time
}

type rule struct {
	match   func(input string) bool
	respond func(req request) Reply
}

// rules is the fixed priority list. Order matters: an input that
// satisfies several predicates resolves to the earliest rule.
var rules = []rule{
	{matchAny("今日の予定", "きょうの予定"), respondToday},
	{matchAny("明日の予定", "あしたの予定"), respondTomorrow},
	{matchAny("今週の予定", "今週"), respondWeek},
	{matchAdd, respondAdd},
	{matchAny("おはよう", "こんにちは", "こんばんは"), respondGreeting},
	{matchAny("ありがとう", "助かる"), respondThanks},
	{matchAny("使い方", "ヘルプ", "何ができる"), respondHelp},
	{func(string) bool { return true }, respondDefault},
}

// Respond classifies input against the rule list and renders a reply
// from the given event snapshot. The snapshot is never mutated.
func Respond(input string, events []model.Event, now time.Time) Reply {
	req := request{input: input, events: events, now: now}
	for _, r := range rules {
		if r.match(input) {
			return r.respond(req)
		}
	}
	// Unreachable: the last rule always matches.
	return respondDefault(req)
}

func matchAny(phrases ...string) func(string) bool {
	return func(input string) bool {
		for _, p := range phrases {
			if strings.Contains(input, p) {
				return true
			}
		}
		return false
	}
}

func matchAdd(input string) bool {
	return strings.Contains(input, "予定") && matchAny("追加", "入れ", "登録")(input)
}

func respondToday(req request) Reply {
	return daySummary(req.events, req.now, "今日",
		"今日の予定はありません。ゆっくり休んでくださいね☕")
}

func respondTomorrow(req request) Reply {
	return daySummary(req.events, req.now.AddDate(0, 0, 1), "明日",
		"明日の予定はありません。のんびり過ごせそうですね🌙")
}

func daySummary(events []model.Event, day time.Time, label, empty string) Reply {
	listed := dateutil.EventsOn(events, day)
	if len(listed) == 0 {
		return Reply{Text: empty}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%sの予定は%d件あります！（%d月%d日）\n", label, len(listed), int(day.Month()), day.Day())
	for _, ev := range listed {
		b.WriteString("・" + dateutil.FormatTime(ev.Timestamp) + " " + ev.Title)
		if ev.Description != "" {
			b.WriteString(" - " + ev.Description)
		}
		b.WriteString("\n")
	}
	return Reply{
		Text:   strings.TrimRight(b.String(), " \n"),
		Action: &Action{Type: ActionList},
	}
}

func respondWeek(req request) Reply {
	start, _ := dateutil.WeekRange(req.now)

	total := 0
	var days strings.Builder
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		listed := dateutil.EventsOn(req.events, day)
		if len(listed) == 0 {
			continue
		}
		total += len(listed)
		fmt.Fprintf(&days, "%d/%d(%s)\n", int(day.Month()), day.Day(), dateutil.WeekdayKanji(day.Weekday()))
		for _, ev := range listed {
			days.WriteString("  " + dateutil.FormatTime(ev.Timestamp) + " " + ev.Title + "\n")
		}
	}

	if total == 0 {
		return Reply{Text: "今週の予定はありません。自由な一週間です！✨"}
	}
	text := fmt.Sprintf("今週の予定は合計%d件です！📅\n", total) + days.String()
	return Reply{
		Text:   strings.TrimRight(text, " \n"),
		Action: &Action{Type: ActionList},
	}
}

func respondAdd(req request) Reply {
	return Reply{
		Text:   "予定の追加はカレンダー画面からどうぞ！日付を選んで a キーで入力フォームが開きます📝",
		Action: &Action{Type: ActionAdd},
	}
}

func respondGreeting(req request) Reply {
	var greeting string
	switch hour := req.now.Hour(); {
	case hour < 10:
		greeting = "おはようございます！"
	case hour >= 18:
		greeting = "こんばんは！"
	default:
		greeting = "こんにちは！"
	}

	todays := dateutil.EventsOn(req.events, req.now)
	if len(todays) > 0 {
		greeting += fmt.Sprintf("今日は予定が%d件ありますよ📅", len(todays))
	} else {
		greeting += "何かお手伝いできることはありますか？"
	}
	return Reply{Text: greeting}
}

func respondThanks(req request) Reply {
	return Reply{Text: "どういたしまして！いつでも声をかけてくださいね😊"}
}

func respondHelp(req request) Reply {
	return Reply{Text: strings.Join([]string{
		"カレンダーアシスタントの使い方です📖",
		"・「今日の予定」 今日のスケジュールを確認",
		"・「明日の予定」 明日のスケジュールを確認",
		"・「今週の予定」 一週間のスケジュールを確認",
		"・「予定を追加」 予定の登録方法を案内",
	}, "\n")}
}

func respondDefault(req request) Reply {
	return Reply{Text: fmt.Sprintf(
		"「%s」ですね。「今日の予定」「明日の予定」「今週の予定」と聞いてみてください。「使い方」でヘルプを表示します。",
		req.input)}
}
