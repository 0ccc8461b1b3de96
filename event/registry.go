package event

import (
	"strings"
)

// Hook names as authored in scene files and shown in tools
var typeToName = [EventTypeCount]string{
	EventPrefabDropped:        "onPrefabDropped",
	EventSuccessfulDropQueued: "onSuccessfulDropQueued",
	EventFirstDropQueued:      "onFirstDropQueued",
	EventLastDropQueued:       "onLastDropQueued",
	EventFailedDropQueued:     "onFailedDropQueued",
}

// GetEventType returns the EventType for a hook name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeToName {
		if strings.EqualFold(n, name) {
			return EventType(i), true
		}
	}
	return 0, false
}

// GetEventName returns the hook name for an EventType
func GetEventName(et EventType) string {
	if et < 0 || et >= EventTypeCount {
		return ""
	}
	return typeToName[et]
}

func (et EventType) String() string {
	if name := GetEventName(et); name != "" {
		return name
	}
	return "unknown"
}
