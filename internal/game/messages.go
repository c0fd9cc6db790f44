package game

import (
	"fmt"
	"sort"

	"github.com/borkshop/rampage/internal/ecs"
)

// MessageLog is the bounded, player-facing log of what happened.
type MessageLog struct {
	Lines []string `json:"lines"`
	Max   int      `json:"max"`
}

// Init empties the log, keeping at most n lines.
func (ml *MessageLog) Init(n int) {
	ml.Max = n
	ml.Lines = make([]string, 0, n)
}

// Log formats and appends a message, discarding the oldest one if full.
func (ml *MessageLog) Log(mess string, args ...any) {
	mess = fmt.Sprintf(mess, args...)
	if len(ml.Lines) < ml.Max {
		ml.Lines = append(ml.Lines, mess)
	} else if ml.Max > 0 {
		copy(ml.Lines, ml.Lines[1:])
		ml.Lines[len(ml.Lines)-1] = mess
	}
}

// Last returns up to n of the most recent lines, oldest first.
func (ml MessageLog) Last(n int) []string {
	if n > len(ml.Lines) {
		n = len(ml.Lines)
	}
	return ml.Lines[len(ml.Lines)-n:]
}

// PendingMessage is a message waiting for its animation to start.
type PendingMessage struct {
	Text string `json:"text"`
	Seq  uint64 `json:"seq"`
}

// logMessage queues a message that reaches the log once anim has started
// (or is gone).
func (w *World) logMessage(anim ecs.Entity, mess string, args ...any) {
	msg := w.Spawn(wcMessage)
	w.messageSeq++
	w.messages[msg.ID()] = PendingMessage{
		Text: fmt.Sprintf(mess, args...),
		Seq:  w.messageSeq,
	}
	w.Insert(&w.inhibit.Relation, relLink, msg, anim)
}

// flushMessages moves every uninhibited pending message to the log, in the
// order they were logged.
func (w *World) flushMessages() {
	var ready []PendingMessage
	for it := w.Iter(ecs.All(wcMessage)); it.Next(); {
		if w.inhibited(it.ID()) {
			continue
		}
		ready = append(ready, w.messages[it.ID()])
		w.Destroy(it.Entity())
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i].Seq < ready[j].Seq })
	for _, pm := range ready {
		w.Messages.Log("%s", pm.Text)
		w.log("%v %s", w.TurnCount, pm.Text)
	}
}

func (w *World) inhibited(id ecs.EntityID) bool {
	for cur := w.inhibit.LookupA(ecs.AllClause, id); cur.Scan(); {
		anim := cur.B()
		if anim.Type().All(wcTimer) && !w.timers[anim.ID()].Active(w.Now) {
			return true
		}
	}
	return false
}
