package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// EncodeMedia stores a list of media URLs as a JSON array column.
func EncodeMedia(urls []string) datatypes.JSON {
	if urls == nil {
		urls = []string{}
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// DecodeMedia reads a media column back. Values that are not a JSON array of
// strings decode to an empty list.
func DecodeMedia(raw datatypes.JSON) []string {
	urls := []string{}
	if len(raw) == 0 {
		return urls
	}
	if err := json.Unmarshal(raw, &urls); err != nil || urls == nil {
		return []string{}
	}
	return urls
}
