package message

import "time"

const (
	FieldID          = "_id"
	FieldMsg         = "msg"
	FieldMsgFrom     = "msgFrom"
	FieldMsgDateTime = "msgDateTime"
)

// Message represents the messages collection. Messages are never updated or deleted.
type Message struct {
	ID          string    `json:"_id,omitempty" bson:"_id,omitempty" gorm:"primaryKey"`
	Msg         string    `json:"msg" bson:"msg" gorm:"not null"`
	MsgFrom     string    `json:"msgFrom" bson:"msgFrom" gorm:"index;not null"`
	MsgDateTime time.Time `json:"msgDateTime" bson:"msgDateTime" gorm:"index;not null"`
}

func (Message) TableName() string {
	return "messages"
}

func (m *Message) GetID() string {
	return m.ID
}

func (m *Message) SetID(id string) {
	m.ID = id
}
