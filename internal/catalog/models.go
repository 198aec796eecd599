package catalog

// Transcript is one meeting-transcript record as held by the store.
type Transcript struct {
	MeetingID    string `bson:"meeting_id" json:"meeting_id"`
	City         string `bson:"city" json:"city"`
	SpeakerCount int    `bson:"speaker_count" json:"speaker_count"`
	WordCount    int    `bson:"transcript_word_count" json:"transcript_word_count"`
	Text         string `bson:"full_transcript_text" json:"full_transcript_text"`
}

// SpeakerMeeting is a row of TopSpeakerMeetings.
type SpeakerMeeting struct {
	MeetingID    string `bson:"meeting_id"`
	City         string `bson:"city"`
	SpeakerCount int    `bson:"speaker_count"`
}

// CityAverage is a per-city average at full precision.
type CityAverage struct {
	City    string  `bson:"city"`
	Average float64 `bson:"average"`
}

// CityCount is a per-city record count.
type CityCount struct {
	City  string `bson:"city"`
	Count int    `bson:"count"`
}

// LongestMeeting is the meeting with the highest word count in a city.
type LongestMeeting struct {
	City      string `bson:"city"`
	MeetingID string `bson:"meeting_id"`
	TopWords  int    `bson:"topWords"`
}

// MeetingLength is a meeting with its transcript word count.
type MeetingLength struct {
	MeetingID string `bson:"meeting_id"`
	City      string `bson:"city"`
	WordCount int    `bson:"transcript_word_count"`
}

// RankedMeeting is a MeetingLength with its competition rank.
type RankedMeeting struct {
	MeetingLength `bson:",inline"`
	Rank          int `bson:"rank"`
}
