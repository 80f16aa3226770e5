package domain

// GroupMessage is append-only group chat; Timestamp is unix milliseconds.
type GroupMessage struct {
	ID        string `gorm:"primaryKey" json:"id"`
	GroupID   string `gorm:"column:group_id;index;not null" json:"groupId"`
	SenderID  string `gorm:"column:sender_id;not null" json:"senderId"`
	Text      string `gorm:"column:text" json:"text"`
	Type      string `gorm:"column:type;default:text" json:"type"`
	Timestamp int64  `gorm:"column:timestamp" json:"timestamp"`
}

func (GroupMessage) TableName() string {
	return "group_messages"
}

const (
	MessageTypeText   = "text"
	MessageTypeSystem = "system"
)

var ValidMessageTypes = map[string]bool{
	MessageTypeText:   true,
	MessageTypeSystem: true,
}
