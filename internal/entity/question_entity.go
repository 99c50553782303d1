package entity

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id          uuid.UUID
	QaId        uuid.UUID
	UserId      uuid.UUID
	Text        string
	DateCreated time.Time
}

// ThreadRow is one row of the question thread join: a question left-joined
// with its answer (if any) and the display names of both users. A question
// with several answers produces several rows.
type ThreadRow struct {
	QuestionId      uuid.UUID
	AskingUserId    uuid.UUID
	AskedBy         string
	QuestionText    string
	QuestionDate    time.Time
	AnswerId        *uuid.UUID
	AnsweringUserId *uuid.UUID
	AnsweredBy      *string
	AnswerText      *string
	AnswerImageURL  *string
	AnswerDate      *time.Time
}

// HasAnswer reports whether the answer side of the join matched.
func (r *ThreadRow) HasAnswer() bool {
	return r.AnswerId != nil
}
