package storage

import "time"

// CouncilElder is one leaderboard row, created lazily on an elder's first win.
type CouncilElder struct {
	ID      int       `dynamodbav:"PK" json:"id"`
	Name    string    `dynamodbav:"Name" json:"name"`
	Points  int       `dynamodbav:"Points" json:"points"`
	LastWin time.Time `dynamodbav:"LastWin" json:"last_win"`
}

// Interaction is one logged question/answer exchange.
type Interaction struct {
	ID       string    `dynamodbav:"PK" json:"id"`
	Question string    `dynamodbav:"Question" json:"question"`
	Answer   string    `dynamodbav:"Answer" json:"answer"`
	Context  string    `dynamodbav:"Context" json:"context"`
	Datetime time.Time `dynamodbav:"Datetime" json:"datetime"`
}
